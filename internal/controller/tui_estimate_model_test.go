package controller

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEstimateModel_HandleEstimationMsgAndView(t *testing.T) {
	model := newEstimateModel()
	if got := model.View(); got != "Loading statement list…\n" {
		t.Fatalf("View() before render = %q", got)
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	updated, _ = updated.Update(estimationMsg{
		items: []fileItem{
			{path: "a.yaml", statements: 2, blocks: 4},
			{path: "b.yaml", statements: 1, blocks: 2},
			{path: "broken.yaml", failed: true},
		},
		statements: 3,
		blocks:     6,
	})

	em, ok := updated.(estimateModel)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}

	if em.files != 2 || em.statements != 3 || em.blocks != 6 {
		t.Fatalf("totals = files %d statements %d blocks %d", em.files, em.statements, em.blocks)
	}

	if len(em.fileList.Items()) != 3 {
		t.Fatalf("list items = %d, want 3", len(em.fileList.Items()))
	}

	view := em.View()
	for _, want := range []string{"Casereach Estimate", "a.yaml", "b.yaml", "Stmts"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestEstimateModel_ErrorView(t *testing.T) {
	model := newEstimateModel()

	updated, _ := model.Update(estimationMsg{err: errors.New("no documents")})
	if view := updated.View(); !strings.Contains(view, "estimation error: no documents") {
		t.Fatalf("View() = %q", view)
	}
}

func TestEstimateModel_QuitKeys(t *testing.T) {
	model := newEstimateModel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := model.Update(key)
		if cmd == nil {
			t.Fatalf("key %q returned no command", key.String())
		}

		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q did not quit", key.String())
		}
	}
}

func TestEstimateModel_TickAnimatesAfterRender(t *testing.T) {
	model := newEstimateModel()

	_, cmd := model.Update(tickMsg{})
	if cmd != nil {
		t.Fatal("tick before render should stop the animation loop")
	}

	updated, _ := model.Update(estimationMsg{items: []fileItem{{path: "a.yaml", statements: 1}}})
	updated, cmd = updated.Update(tickMsg{})

	if cmd == nil {
		t.Fatal("tick after render should schedule the next tick")
	}

	if em := updated.(estimateModel); em.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", em.animOffset)
	}
}

func TestEstimateModel_SelectionResetsScroll(t *testing.T) {
	model := newEstimateModel()

	updated, _ := model.Update(estimationMsg{items: []fileItem{{path: "a.yaml"}, {path: "b.yaml"}}})
	updated, _ = updated.Update(tickMsg{})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyDown})

	em := updated.(estimateModel)
	if em.fileList.Index() != 1 || em.animOffset != 0 || em.lastSelected != 1 {
		t.Fatalf("index %d offset %d last %d", em.fileList.Index(), em.animOffset, em.lastSelected)
	}
}
