package resume

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseSkills decodes a Skills section's content.
//
// The canonical form is a JSON array of Skill objects. Hand-edited or legacy
// content may instead be a comma-separated name list; in that case ids and
// colors are synthesized by position, rotating through SkillPalette. The JSON
// parse is always preferred; the fallback runs only when it fails.
func ParseSkills(content string) []Skill {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	if json.Valid([]byte(content)) {
		// Valid JSON that is not a skill array yields no skills rather
		// than falling through to the comma heuristic.
		var skills []Skill
		if err := json.Unmarshal([]byte(content), &skills); err != nil {
			return nil
		}
		return skills
	}

	var out []Skill
	for _, name := range strings.Split(content, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		i := len(out)
		out = append(out, Skill{
			ID:    fmt.Sprintf("skill-%d", i),
			Name:  name,
			Color: SkillPalette[i%len(SkillPalette)],
		})
	}
	return out
}

// EncodeSkills serializes an ordered skill list back to section content.
func EncodeSkills(skills []Skill) (string, error) {
	data, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}
	return string(data), nil
}
