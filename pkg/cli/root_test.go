/*
Copyright © 2025 Savor Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"strings"
	"testing"
)

func TestRootCmdStructure(t *testing.T) {
	root := rootCmd()

	if root.Name != "savor" {
		t.Errorf("Name = %v, want savor", root.Name)
	}

	wantCommands := []string{
		"fetch-recipes",
		"fetch-categories",
		"fetch-tags",
		"auto-categorize-recipes",
		"auto-tag",
		"populate-categories",
	}
	for _, name := range wantCommands {
		found := false
		for _, cmd := range root.Commands {
			if cmd.Name == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestCommandStructure(t *testing.T) {
	type commandCase struct {
		name          string
		requiredFlags []string
	}

	cases := map[string]commandCase{
		"fetch-recipes":           {requiredFlags: []string{"output", "format"}},
		"fetch-categories":        {requiredFlags: []string{"output", "format"}},
		"fetch-tags":              {requiredFlags: []string{"output", "format"}},
		"auto-categorize-recipes": {requiredFlags: []string{"limit", "output", "format"}},
		"auto-tag":                {requiredFlags: []string{"tag", "limit", "yes", "output", "format"}},
		"populate-categories":     {requiredFlags: []string{"file", "output", "format"}},
	}

	for _, cmd := range rootCmd().Commands {
		tc, ok := cases[cmd.Name]
		if !ok {
			continue
		}
		t.Run(cmd.Name, func(t *testing.T) {
			if cmd.Usage == "" {
				t.Error("Usage should not be empty")
			}
			if cmd.Description == "" {
				t.Error("Description should not be empty")
			}
			if cmd.Action == nil {
				t.Error("Action should not be nil")
			}
			for _, flagName := range tc.requiredFlags {
				found := false
				for _, flag := range cmd.Flags {
					if hasName(flag, flagName) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("required flag %q not found", flagName)
				}
			}
		})
	}
}

func TestRunInvalidFlag(t *testing.T) {
	if code := Run([]string{"savor", "--no-such-flag"}); code != 1 {
		t.Errorf("Run() = %d, want 1", code)
	}
}

func TestVersionString(t *testing.T) {
	root := rootCmd()
	if !strings.Contains(root.Version, version) {
		t.Errorf("Version %q does not contain %q", root.Version, version)
	}
}
