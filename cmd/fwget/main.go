// Command fwget is the CLI front-end spec.md places outside the core,
// mirroring original_source/fwdctl/src/get.rs's "get" subcommand:
// open the database, read the current root, resolve that revision, and
// print the value stored under a key.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mr-tron/base58"
	"github.com/urfave/cli"

	"github.com/KushnerykPavel/firewood/internal/config"
	"github.com/KushnerykPavel/firewood/internal/db"
)

func main() {
	app := cli.NewApp()
	app.Name = "fwget"
	app.Usage = "read a value out of a firewood-style node store"
	app.Commands = []cli.Command{
		getCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var getCommand = cli.Command{
	Name:  "get",
	Usage: "print the value stored under a key",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "db",
			Value: "firewood",
			Usage: "name of the database directory",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "print the resolved root hash and arena size before the value",
		},
	},
	ArgsUsage: "KEY",
	Action:    runGet,
}

func runGet(c *cli.Context) error {
	key := c.Args().First()
	if key == "" {
		return cli.NewExitError("the key to get is required", 1)
	}

	// Truncate(false) matches the original CLI's own DbConfig::builder()
	// call verbatim (original_source/fwdctl/src/get.rs).
	cfg, err := config.NewBuilder().Truncate(false).Build()
	if err != nil {
		return err
	}

	store, err := db.Open(c.String("db"), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	hash, err := store.RootHash()
	if err != nil {
		if errors.Is(err, db.ErrEmptyDatabase) {
			fmt.Println("Database is empty")
			return nil
		}
		return err
	}

	if c.Bool("verbose") {
		fmt.Fprintln(os.Stderr, describeHash(hash.Bytes(), arenaFileSize(c.String("db"))))
	}

	rev, err := store.Revision(hash)
	if err != nil {
		return err
	}

	value, err := rev.Val([]byte(key))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			fmt.Fprintf(os.Stderr, "Key %q not found\n", key)
			return nil
		}
		return err
	}

	fmt.Printf("%q\n", string(value))
	return nil
}

// describeHash renders a root hash the way an operator-facing message
// would: base58 for compactness, go-humanize for the arena size.
func describeHash(digest []byte, arenaBytes uint64) string {
	return fmt.Sprintf("%s (arena: %s)", base58.Encode(digest), humanize.Bytes(arenaBytes))
}

// arenaFileSize stats the arena file directly rather than threading a
// size accessor through internal/db and internal/store just for this
// verbose diagnostic; 0 if the file can't be statted.
func arenaFileSize(dbDir string) uint64 {
	info, err := os.Stat(filepath.Join(dbDir, "arena.db"))
	if err != nil {
		return 0
	}
	return uint64(info.Size())
}
