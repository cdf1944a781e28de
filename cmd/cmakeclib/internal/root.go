package internal

import (
	"errors"
	"os"
	"os/exec"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cmakeclib",
	Short: "cmakeclib builds the dpnp native backend with cmake",
	Long:  `cmakeclib is the native-library build step of the dpnp package: it configures, builds and installs the backend with cmake.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if code := exitCode(err); code > 0 {
			log.Error(err)
			os.Exit(code)
		}
		log.Fatal(err)
	}
}

// exitCode returns the exit status of a failed child process wrapped in err,
// or 0 if err did not come from one.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}
