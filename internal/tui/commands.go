package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/foundation/expr"
	"github.com/msto63/asymptotix/internal/store"
)

// evaluate resolves names from the session scope first, then from the
// store. A fresh store resolver per input sees definitions saved meanwhile.
func (m Model) evaluate(input, name, source string) tea.Cmd {
	scope, st, logger := m.scope, m.store, m.logger
	logTolerance, sessionID := m.logTolerance, m.sessionID

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		resolvers := []expr.Resolver{scope}
		if st != nil {
			resolvers = append(resolvers, store.NewResolver(ctx, st, store.ResolverOptions{
				Logger:       logger,
				LogTolerance: logTolerance,
			}))
		}
		ev := expr.NewEvaluator(expr.Options{
			Logger:       logger,
			Resolver:     expr.Chain(resolvers...),
			LogTolerance: logTolerance,
		})

		timer := logger.StartTimer("tui.evaluate")
		v, err := ev.EvaluateString(source)
		if err != nil {
			timer.StopWithError(err)
		} else {
			timer.WithField("kind", v.Kind().String()).Stop()
		}

		if st != nil {
			entry := &store.HistoryEntry{SessionID: sessionID, Input: input, Failed: err != nil}
			if err != nil {
				entry.Result = err.Error()
			} else {
				entry.Result = v.String()
			}
			if herr := st.AddHistory(ctx, entry); herr != nil {
				logger.WarnWithErr("History not recorded", herr)
			}
		}

		return evalResultMsg{input: input, name: name, source: source, value: v, err: err}
	}
}

func (m Model) loadHistory() tea.Cmd {
	if m.store == nil {
		return nil
	}
	st, limit := m.store, m.historyLimit

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		entries, err := st.History(ctx, limit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		inputs := make([]string, 0, len(entries))
		for _, e := range entries {
			inputs = append(inputs, e.Input)
		}
		return historyLoadedMsg{inputs: inputs}
	}
}

func (m Model) listDefinitions() tea.Cmd {
	st := m.store

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		defs, err := st.List(ctx)
		if err != nil {
			return infoMsg{input: ":defs", err: err}
		}
		if len(defs) == 0 {
			return infoMsg{lines: []string{"Keine gespeicherten Definitionen."}}
		}
		lines := make([]string, 0, len(defs))
		for _, d := range defs {
			line := fmt.Sprintf("%s = %s", d.Name, d.Expression)
			if d.Note != "" {
				line += "  # " + d.Note
			}
			lines = append(lines, line)
		}
		return infoMsg{lines: lines}
	}
}

func (m Model) listHistory() tea.Cmd {
	st := m.store

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		entries, err := st.History(ctx, 20)
		if err != nil {
			return infoMsg{input: ":history", err: err}
		}
		if len(entries) == 0 {
			return infoMsg{lines: []string{"Kein Verlauf vorhanden."}}
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			mark := "→"
			if e.Failed {
				mark = "✗"
			}
			lines = append(lines, fmt.Sprintf("%s  %s %s  %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Input, mark, e.Result))
		}
		return infoMsg{lines: lines}
	}
}

func (m Model) save(input, name, source string) tea.Cmd {
	st, logger, sessionID := m.store, m.logger, m.sessionID

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		def, err := st.Put(ctx, name, source, "tui "+sessionID)
		if err != nil {
			return infoMsg{input: input, err: err}
		}
		logger.Info("Binding saved", mdwlog.Fields{"name": def.Name, "id": def.ID})
		return infoMsg{lines: []string{fmt.Sprintf("Gespeichert: %s = %s", def.Name, def.Expression)}}
	}
}
