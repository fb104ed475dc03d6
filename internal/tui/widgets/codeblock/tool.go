package codeblock

import (
	"codetool/internal/paste"
)

// Capabilities the host reads before instantiating the tool.
const (
	IsReadOnlySupported = true
	// EnableLineBreaks keeps Enter inside the block instead of letting the
	// host start a new block.
	EnableLineBreaks = true
)

// DefaultPlaceholder is shown on an empty editable surface.
const DefaultPlaceholder = "Code ..."

// PasteConfig declares the pasted elements this tool takes over.
var PasteConfig = paste.Config{Tags: []string{"PRE"}}

// Sanitize lists data fields the host must not strip markup from.
var Sanitize = map[string]bool{"code": true}

// ToolboxEntry is the tool's presentation in the host's toolbox.
type ToolboxEntry struct {
	Icon  string
	Title string
}

// Toolbox is this tool's toolbox entry.
var Toolbox = ToolboxEntry{Icon: "{ }", Title: "Code"}

// Config is the per-tool configuration supplied by the host.
type Config struct {
	Placeholder string
}

// Translator returns the localized form of a message.
type Translator interface {
	T(msg string) string
}

// Dict is a map-backed Translator; missing messages are returned unchanged.
type Dict map[string]string

func (d Dict) T(msg string) string {
	if s, ok := d[msg]; ok && s != "" {
		return s
	}
	return msg
}

// StyleClasses are the host's shared class names.
type StyleClasses struct {
	Block                string
	Input                string
	SettingsButton       string
	SettingsButtonActive string
}

// DefaultStyles mirrors the class names editor hosts commonly use.
var DefaultStyles = StyleClasses{
	Block:                "cdx-block",
	Input:                "cdx-input",
	SettingsButton:       "cdx-settings-button",
	SettingsButtonActive: "cdx-settings-button--active",
}

// HostAPI is what the host hands to every tool instance.
type HostAPI struct {
	I18n   Translator
	Styles StyleClasses
}

func (a HostAPI) t(msg string) string {
	if a.I18n == nil {
		return msg
	}
	return a.I18n.T(msg)
}
