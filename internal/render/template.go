package render

// documentTemplate is the HTML surface for the assembled document. The
// fixed 794px width is A4 at 96 DPI; the export pipeline depends on that
// width to slice the rasterized surface into page bands.
const documentTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        * { box-sizing: border-box; }
        body {
            margin: 0;
            padding: 0;
            font-family: '{{.Style.Fonts.Body}}', sans-serif;
            font-size: {{printf "%.2f" .Style.BodySizePx}}px;
            color: {{.Style.Colors.Text}};
            background: {{.Style.Colors.Background}};
        }
        #resume-root {
            width: 794px; /* A4 @ 96 DPI */
            min-height: 1123px;
            margin: 0;
            display: flex;
            background: {{.Style.Colors.Background}};
        }
        .sidebar {
            width: 33.33%;
            background: #1f2937;
            color: #ffffff;
            padding: {{.Style.Margins.Top}}px {{.Style.Margins.Right}}px {{.Style.Margins.Bottom}}px {{.Style.Margins.Left}}px;
        }
        .sidebar h2 {
            font-family: '{{.Style.Fonts.Heading}}', sans-serif;
            font-size: {{printf "%.2f" .Style.BodySizePx}}px;
            font-weight: 700;
            margin: 0 0 12px;
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }
        .sidebar-block { margin-bottom: 28px; }
        .sidebar ul { list-style: none; margin: 0; padding: 0; }
        .sidebar li { margin-bottom: 8px; padding-left: 14px; position: relative; }
        .sidebar li::before {
            content: '';
            position: absolute;
            left: 0;
            top: 0.45em;
            width: 6px;
            height: 6px;
            border-radius: 50%;
            background: #ffffff;
        }
        .photo {
            width: 160px;
            height: 160px;
            margin: 0 auto 24px;
            border-radius: 50%;
            overflow: hidden;
            border: 4px solid #ffffff;
        }
        .photo img { width: 100%; height: 100%; object-fit: cover; }
        .contact-line { margin-bottom: 8px; word-break: break-word; }
        .main {
            width: 66.67%;
            padding: {{.Style.Margins.Top}}px {{.Style.Margins.Right}}px {{.Style.Margins.Bottom}}px {{.Style.Margins.Left}}px;
        }
        .main header { margin-bottom: 28px; }
        .main h1 {
            font-family: '{{.Style.Fonts.Heading}}', sans-serif;
            font-size: {{printf "%.2f" .HeaderSizePx}}px;
            font-weight: 700;
            color: {{.Style.Colors.Primary}};
            margin: 0 0 6px;
        }
        .main .role {
            font-size: {{printf "%.2f" .Style.BodySizePx}}px;
            color: {{.Style.Colors.Secondary}};
            margin: 0;
        }
        .group { margin-bottom: 32px; }
        .group h2 {
            font-family: '{{.Style.Fonts.Heading}}', sans-serif;
            font-size: {{printf "%.2f" .Style.HeadingSizePx}}px;
            font-weight: {{.Style.HeadingStyle.Weight}};
            color: {{.Style.HeadingStyle.Color}};
            margin: 0 0 16px;
        }
        .timeline { position: relative; padding-left: 28px; }
        .timeline::before {
            content: '';
            position: absolute;
            left: 8px;
            top: 0;
            bottom: 0;
            width: 2px;
            background: {{.Style.Colors.Accent}};
        }
        .timeline .entry { position: relative; margin-bottom: 24px; }
        .timeline .entry::before {
            content: '';
            position: absolute;
            left: -25px;
            top: 4px;
            width: 10px;
            height: 10px;
            border-radius: 50%;
            background: {{.Style.Colors.Accent}};
        }
        .entry { line-height: 1.5; }
    </style>
</head>
<body>
    <div id="resume-root">
        <div class="sidebar">
            {{if .Personal.PhotoURI}}
            <div class="photo"><img src="{{.Personal.PhotoURI | safeURL}}" alt="Profile" /></div>
            {{end}}
            {{if .Sidebar.About}}
            <div class="sidebar-block">
                <h2>About Me</h2>
                <div class="entry">{{.Sidebar.About | safeHTML}}</div>
            </div>
            {{end}}
            {{if .HasContact}}
            <div class="sidebar-block">
                <h2>Contact</h2>
                {{if .Personal.Phone}}<div class="contact-line">{{.Personal.Phone}}</div>{{end}}
                {{if .Personal.Email}}<div class="contact-line">{{.Personal.Email}}</div>{{end}}
                {{if .Personal.Address}}<div class="contact-line">{{.Personal.Address}}</div>{{end}}
                {{if .Personal.Website}}<div class="contact-line">{{.Personal.Website}}</div>{{end}}
            </div>
            {{end}}
            {{if .Sidebar.Skills}}
            <div class="sidebar-block">
                <h2>Skills</h2>
                <ul>
                    {{range .Sidebar.Skills}}<li>{{.}}</li>{{end}}
                </ul>
            </div>
            {{end}}
            {{if .Sidebar.Languages}}
            <div class="sidebar-block">
                <h2>Language</h2>
                <ul>
                    {{range .Sidebar.Languages}}<li>{{.}}</li>{{end}}
                </ul>
            </div>
            {{end}}
        </div>
        <div class="main">
            <header>
                <h1>{{.Personal.FirstName}} {{.Personal.LastName}}</h1>
                {{if .Personal.Title}}<p class="role">{{.Personal.Title}}</p>{{end}}
            </header>
            {{range .Main}}
            <div class="group">
                <h2>{{.Title}}</h2>
                {{if .Timeline}}
                <div class="timeline">
                    {{range .Entries}}
                    <div class="entry">{{.Content | safeHTML}}</div>
                    {{end}}
                </div>
                {{else}}
                {{range .Entries}}
                <div class="entry">{{.Content | safeHTML}}</div>
                {{end}}
                {{end}}
            </div>
            {{end}}
        </div>
    </div>
</body>
</html>
`
