package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/database"
	"resumeforge/internal/storage"
	"resumeforge/internal/store"
)

// admin performs offline maintenance on the persisted state blob. Exactly
// one action flag must be given; the API should be stopped while running
// import or reset so its in-memory state does not overwrite the result.
func main() {
	var (
		show       = flag.Bool("show", false, "print the current state as indented JSON")
		exportPath = flag.String("export", "", "write the current state blob to the given file")
		importPath = flag.String("import", "", "replace the state with the blob from the given file")
		reset      = flag.Bool("reset", false, "replace the state with the factory defaults")
	)
	flag.Parse()

	actions := 0
	if *show {
		actions++
	}
	if *exportPath != "" {
		actions++
	}
	if *importPath != "" {
		actions++
	}
	if *reset {
		actions++
	}
	if actions != 1 {
		log.Fatal("exactly one of --show, --export, --import, --reset is required")
	}

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.RedisAddr()})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()

	states, err := database.NewStateStore(cfg, redisClient)
	if err != nil {
		log.Fatalf("init state store: %v", err)
	}

	switch {
	case *show:
		blob := mustLoad(ctx, states)
		state, err := store.DecodeState(blob)
		if err != nil {
			log.Fatalf("decode state: %v", err)
		}
		pretty, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			log.Fatalf("marshal state: %v", err)
		}
		fmt.Println(string(pretty))

	case *exportPath != "":
		blob := mustLoad(ctx, states)
		if err := os.WriteFile(*exportPath, blob, 0o644); err != nil {
			log.Fatalf("write export file: %v", err)
		}
		fmt.Printf("state written to %s\n", *exportPath)

	case *importPath != "":
		blob, err := os.ReadFile(*importPath)
		if err != nil {
			log.Fatalf("read import file: %v", err)
		}
		// Round-trip through the decoder so a malformed file is rejected
		// instead of persisted verbatim.
		state, err := store.DecodeState(blob)
		if err != nil {
			log.Fatalf("decode import file: %v", err)
		}
		mustSave(ctx, states, state)
		fmt.Printf("state imported from %s\n", *importPath)

	case *reset:
		mustSave(ctx, states, store.DefaultState())
		fmt.Println("state reset to defaults")
	}
}

func mustLoad(ctx context.Context, states storage.StateStore) []byte {
	blob, err := states.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrStateNotFound) {
			log.Fatal("no persisted state found")
		}
		log.Fatalf("load state: %v", err)
	}
	return blob
}

func mustSave(ctx context.Context, states storage.StateStore, state store.State) {
	blob, err := json.Marshal(state)
	if err != nil {
		log.Fatalf("marshal state: %v", err)
	}
	if err := states.Save(ctx, blob); err != nil {
		log.Fatalf("save state: %v", err)
	}
}
