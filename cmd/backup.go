package cmd

import (
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/backup"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/workspace"
)

var installDir string

func containerManager() (*backup.Manager, []string) {
	fs := osfs.New("/")
	dir := workspace.BundleDir(fs, installDir)
	names := []string{workspace.DataBundleName, workspace.StyleBundleName}
	return backup.NewManager(fs, dir), names
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the container files of a game install",
	Long: `Backup takes a one-shot ".original" copy of each container file the
first time it runs, plus a timestamped copy on every invocation. Backups live
in a "backup" directory next to the containers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, names := containerManager()
		now := time.Now()
		for _, name := range names {
			if _, created, err := mgr.CreateOriginal(name); err != nil {
				return err
			} else if created {
				fmt.Printf("original backup created for %s\n", name)
			}
			target, err := mgr.Create(name, now)
			if err != nil {
				return err
			}
			fmt.Printf("backed up %s -> %s\n", name, target)
		}
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the original container files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, names := containerManager()
		restored := 0
		for _, name := range names {
			if mgr.Original(name) == "" {
				fmt.Printf("no original backup for %s\n", name)
				continue
			}
			if err := mgr.RestoreOriginal(name); err != nil {
				return err
			}
			fmt.Printf("restored %s\n", name)
			restored++
		}
		if restored == 0 {
			return fmt.Errorf("nothing restored: originals are created by the backup command")
		}
		return nil
	},
}

var listBackupsCmd = &cobra.Command{
	Use:   "list-backups",
	Short: "List container backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _ := containerManager()
		backups, err := mgr.List("")
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("no backups")
			return nil
		}
		for _, b := range backups {
			fmt.Println(b)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{backupCmd, restoreCmd, listBackupsCmd} {
		c.Flags().StringVarP(&installDir, "install-dir", "i", "", "Path to the game installation directory")
		_ = c.MarkFlagRequired("install-dir")
		rootCmd.AddCommand(c)
	}
}
