package starknet

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Diagnostic patterns recognized in the external tool's stderr.
const (
	missingFeePattern     = "max_fee must be bigger than 0"
	missingAccountPattern = "transactions should go through the __execute__ entrypoint."
)

// Runner executes assembled commands as subprocesses.
type Runner struct {
	log zerolog.Logger
}

// NewRunner creates a Runner that reports failures through the given
// logger.
func NewRunner(log zerolog.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes the command, blocking until the external tool exits. Both
// streams are captured from the single execution. On success the trimmed
// stdout text is returned; on failure the stderr is classified, a
// remediation hint is logged for recognized patterns, and the empty string
// is returned. Callers must treat "" as "operation did not succeed".
func (r *Runner) Run(cmd *Command) string {
	var stdout, stderr bytes.Buffer

	proc := exec.Command(cmd.Args[0], cmd.Args[1:]...)
	proc.Stdout = &stdout
	proc.Stderr = &stderr
	if len(cmd.Env) > 0 {
		proc.Env = append(os.Environ(), cmd.Env...)
	}

	r.log.Debug().Strs("command", cmd.Args).Strs("env", cmd.Env).Msg("running starknet CLI")

	if err := proc.Run(); err != nil {
		errMsg := stderr.String()
		r.log.Debug().Err(err).Str("stderr", errMsg).Msg("starknet CLI failed")

		switch {
		case strings.Contains(errMsg, missingFeePattern):
			r.log.Error().Msg("max fee is missing, try with: --max_fee=MAX_FEE")
		case strings.Contains(errMsg, missingAccountPattern):
			r.log.Error().Msg("this transaction must go through an account, try with: nile send [OPTIONS] SIGNER CONTRACT_NAME METHOD [PARAMS]")
		default:
			r.log.Error().Str("stderr", strings.TrimSpace(errMsg)).Msg("starknet CLI failed")
		}
		return ""
	}

	return strings.TrimSpace(stdout.String())
}
