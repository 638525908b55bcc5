package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sipeed/walletd/pkg/client"
)

const (
	exitRuntimeError = 1
	exitInvalidArgs  = 2

	codeRuntimeError = "RUNTIME_ERROR"
	codeInvalidArgs  = "INVALID_ARGS"
)

// envelope is the machine-readable result shape emitted with --json.
type envelope struct {
	Success bool           `json:"success"`
	Data    any            `json:"data"`
	Error   *envelopeError `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// exitError carries the process exit code after the result has been
// rendered; main unwraps it without printing again.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

// emit renders a successful result: the JSON envelope with --json,
// otherwise the command's human rendering (or indented JSON as fallback).
func emit(data any, human func()) error {
	if flagJSON {
		return printJSON(envelope{Success: true, Data: data})
	}
	if human != nil {
		human()
		return nil
	}
	return printJSON(data)
}

// fail renders an error and decides the exit code: invalid-argument
// outcomes (daemon 400s) exit 2, runtime errors (unreachable daemon,
// timeouts, 500s) exit 1.
func fail(err error) error {
	code := codeRuntimeError
	exit := exitRuntimeError

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.IsInvalidArgs() {
		code = codeInvalidArgs
		exit = exitInvalidArgs
	}

	if flagJSON {
		_ = printJSON(envelope{
			Success: false,
			Error:   &envelopeError{Code: code, Message: err.Error()},
		})
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	return &exitError{code: exit}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
