package config

import (
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

func FindBin(bin string) (string, error) {
	cmd := exec.Command("which", bin)
	output, err := cmd.CombinedOutput()

	stringOutput := strings.TrimSpace(string(output))
	if err != nil {
		return "", errors.Wrapf(err, "Failed to find %s: %s", bin, stringOutput)
	}

	if stringOutput == "" {
		return "", errors.Newf("No bin found for %s", bin)
	}

	return stringOutput, nil
}

func SoxPath() (string, error) {
	return FindBin("sox")
}
