package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolens/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("configure with json format to stdout", func(t *testing.T) {
		err := logging.Configure("json", "info", "stdout")
		gt.NoError(t, err)
	})

	t.Run("configure with text format", func(t *testing.T) {
		err := logging.Configure("text", "debug", "stdout")
		gt.NoError(t, err)
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stdout")
		gt.Error(t, err)
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stdout")
		gt.Error(t, err)
	})

	t.Run("configure with file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "octolens.log")
		gt.NoError(t, logging.Configure("json", "info", path))

		logging.Default().Info("hello")
		gt.NoError(t, logging.Configure("text", "info", "stdout"))

		body := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(body)).Contains("hello")
	})
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	logger.Info("test message", "key", "value")
}
