package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Onimuxha/font/internal/domain/entity"
)

var (
	downloadYes bool
	downloadDir string
)

var downloadCmd = &cobra.Command{
	Use:   "download <font-id>",
	Short: "Download a font file",
	Long: `Download a font file to the downloads directory.

The download asks for confirmation unless --yes is given. Existing
files are never overwritten; a numeric suffix is appended instead.

Examples:
  font download battambang
  font download inter --yes --dir ./fonts`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().BoolVarP(&downloadYes, "yes", "y", false, "skip the confirmation prompt")
	downloadCmd.Flags().StringVar(&downloadDir, "dir", "", "target directory (default: downloads dir)")
}

func runDownload(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	rec, ok := app.BrowseUC.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown font id %q (see 'font list')", args[0])
	}

	uc := app.DownloadUC
	if downloadDir != "" {
		uc = app.DownloadUCForDir(downloadDir)
	}

	uc.Request(rec)

	if !downloadYes && !promptConfirm(rec) {
		uc.Cancel()
		fmt.Println(app.Theme.Subtle.Render("Canceled."))
		return nil
	}

	result, err := uc.Confirm(app.Ctx())
	if err != nil {
		return err
	}

	fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("Saved %s", result.Destination)))
	return nil
}

// promptConfirm asks on stdin; anything but y/yes declines.
func promptConfirm(rec entity.FontRecord) bool {
	fmt.Printf("Download %s (%s)? [y/N] ", rec.Name, rec.Category)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
