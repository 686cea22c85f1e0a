package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/sahilm/fuzzy"

	"github.com/magicvibe/vibehook/internal/event"
	"github.com/magicvibe/vibehook/internal/hook"
	"github.com/magicvibe/vibehook/internal/log"
)

// hookInfo is the JSON shape of one listed hook.
type hookInfo struct {
	ID       string `json:"id"`
	File     string `json:"file"`
	Tier     string `json:"tier"`
	Type     string `json:"type"`
	Trigger  string `json:"trigger"`
	Priority int    `json:"priority"`
	Status   string `json:"status"`
	Title    string `json:"title,omitempty"`
	Problem  string `json:"problem,omitempty"`
}

func runList(ctx context.Context, eventFilter, fuzzyFilter string, asJSON bool) error {
	logger := log.FromContext(ctx)

	eng, err := setupEngine()
	if err != nil {
		return err
	}

	if eventFilter != "" && !event.Type(eventFilter).Known() {
		return fmt.Errorf("unknown event type %q", eventFilter)
	}

	hooks, err := hook.Load(
		eng.Config.AbsSystemHookDir(eng.VibeDir),
		eng.Config.AbsUserHookDir(eng.VibeDir),
	)
	if err != nil {
		return err
	}

	if eventFilter != "" {
		var filtered []hook.Definition
		for _, h := range hooks {
			if string(h.Type) == eventFilter {
				filtered = append(filtered, h)
			}
		}
		hooks = filtered
	}

	if fuzzyFilter != "" {
		ids := make([]string, len(hooks))
		for i, h := range hooks {
			ids[i] = h.ID
		}
		matches := fuzzy.Find(fuzzyFilter, ids)
		filtered := make([]hook.Definition, 0, len(matches))
		for _, m := range matches {
			filtered = append(filtered, hooks[m.Index])
		}
		hooks = filtered
	}

	// Dispatch order, so the listing reflects execution order.
	sort.Slice(hooks, func(i, j int) bool {
		return hook.Less(hooks[i], hooks[j])
	})

	infos := make([]hookInfo, 0, len(hooks))
	for _, h := range hooks {
		infos = append(infos, hookInfo{
			ID:       h.ID,
			File:     h.File,
			Tier:     string(h.Tier),
			Type:     string(h.Type),
			Trigger:  h.Trigger,
			Priority: h.Priority,
			Status:   hookStatus(h),
			Title:    h.Title,
			Problem:  h.Problem,
		})
	}

	if asJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(infos) == 0 {
		logger.Println("No hooks found.")
		return nil
	}

	headers := []string{"ID", "TYPE", "TRIGGER", "PRIORITY", "TIER", "STATUS", "TITLE"}
	var rows [][]string
	for _, info := range infos {
		rows = append(rows, []string{
			info.ID,
			info.Type,
			info.Trigger,
			strconv.Itoa(info.Priority),
			info.Tier,
			colorize(info.Status),
			info.Title,
		})
	}
	fmt.Print(renderTable(headers, rows))

	return nil
}

func hookStatus(h hook.Definition) string {
	switch {
	case !h.Valid():
		return "invalid"
	case !h.Enabled:
		return "disabled"
	}
	return "enabled"
}
