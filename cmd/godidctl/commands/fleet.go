package commands

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openflightid/godid/internal/fleet"
	"github.com/openflightid/godid/internal/odid"
)

func fleetCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Ingest '<key> <hex>' lines from stdin into a fleet tracker and print a final snapshot",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tracker := fleet.New(ttl, ttl, nil)

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				key, raw, ok := strings.Cut(line, " ")
				if !ok {
					return fmt.Errorf("malformed line %q, want '<key> <hex>'", line)
				}
				buf, err := parseMessageHex(strings.TrimSpace(raw))
				if err != nil {
					return fmt.Errorf("line %q: %w", line, err)
				}
				if _, err := tracker.Ingest(key, buf); err != nil {
					return fmt.Errorf("line %q: %w", line, err)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			snapshot := tracker.Snapshot()
			keys := make([]string, 0, len(snapshot))
			for key := range snapshot {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				messages, err := snapshot[key].EncodedMessages()
				if err != nil {
					return fmt.Errorf("aircraft %s: %w", key, err)
				}
				fmt.Printf("%s: %d valid message(s)\n", key, len(messages))
				for _, m := range messages {
					fmt.Printf("  %s: %s\n", odid.MessageTypeOf(m), hex.EncodeToString(m[:]))
				}
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", time.Minute, "tracker entry TTL for this one-shot run")
	return cmd
}
