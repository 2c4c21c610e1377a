package pipeline

import (
	"errors"

	"github.com/jadenpxrk/copycode/internal/collector"
	"github.com/jadenpxrk/copycode/internal/workspace"
)

var (
	// ErrNoSelection is returned when there is nothing to copy.
	ErrNoSelection = collector.ErrNoSelection
	// ErrNoWorkspaceRoot is returned when no root is available for relative paths.
	ErrNoWorkspaceRoot = workspace.ErrNoWorkspaceRoot
	// ErrNoSelectedText is returned when the selection text is empty.
	ErrNoSelectedText = errors.New("no code selected")
)
