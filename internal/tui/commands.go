package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/models"
)

func (m mainLoopModel) cmdLoadHome() tea.Cmd {
	ctx, serverAdapter, position := m.ctx, m.adapter, m.position
	return func() tea.Msg {
		state, err := serverAdapter.HomeScreen(ctx, position)
		return homeLoadedMsg{state: state, err: err}
	}
}

func (m mainLoopModel) cmdLoadDiary() tea.Cmd {
	ctx, serverAdapter, diaryID := m.ctx, m.adapter, m.diaryID
	pager := max(m.pager, 0)
	return func() tea.Msg {
		state, err := serverAdapter.DiaryScreen(ctx, diaryID, pager)
		return diaryLoadedMsg{state: state, err: err}
	}
}

func (m mainLoopModel) cmdLoadImages(images []models.DiaryImage) tea.Cmd {
	ctx, serverAdapter, diaryID := m.ctx, m.adapter, m.diaryID
	return func() tea.Msg {
		return imagesLoadedMsg{diaryID: diaryID, images: serverAdapter.LoadImages(ctx, images)}
	}
}

func (m mainLoopModel) cmdNextRender(pageID string) tea.Cmd {
	ctx, serverAdapter, gen := m.ctx, m.adapter, m.layout.gen
	return func() tea.Msg {
		render, err := serverAdapter.NextRender(ctx, pageID)
		return renderMsg{gen: gen, pageID: pageID, render: render, err: err}
	}
}

func (m mainLoopModel) cmdReportLayout(pageID string, report models.LayoutReport) tea.Cmd {
	ctx, serverAdapter, gen := m.ctx, m.adapter, m.layout.gen
	return func() tea.Msg {
		render, err := serverAdapter.ReportLayout(ctx, pageID, report)
		return renderMsg{gen: gen, pageID: pageID, render: render, err: err}
	}
}

func (m mainLoopModel) cmdResetLayout(pageID string, all bool) tea.Cmd {
	ctx, serverAdapter, gen := m.ctx, m.adapter, m.layout.gen
	return func() tea.Msg {
		render, err := serverAdapter.ResetLayout(ctx, pageID, all)
		return renderMsg{gen: gen, pageID: pageID, render: render, err: err}
	}
}

func (m mainLoopModel) cmdUpdatePage(pageID, content string) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		page, err := serverAdapter.UpdatePage(ctx, pageID, content)
		return pageSavedMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdCreateDiary(title, description string) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		diary, err := serverAdapter.CreateDiary(ctx, models.DiaryRequest{Title: title, Description: description})
		return diaryCreatedMsg{diary: diary, err: err}
	}
}

func (m mainLoopModel) cmdDeleteCurrentDiary() tea.Cmd {
	diary, ok := m.home.Current()
	if !ok {
		return nil
	}
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		return diaryDeletedMsg{err: serverAdapter.DeleteDiary(ctx, diary.ID)}
	}
}

func (m mainLoopModel) cmdLoadCapsules(tab models.CapsuleTab) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		state, err := serverAdapter.CapsuleScreen(ctx, tab)
		return capsulesLoadedMsg{state: state, err: err}
	}
}

func (m mainLoopModel) cmdOpenCapsule(capsuleID string) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		capsule, err := serverAdapter.GetCapsule(ctx, capsuleID)
		return capsuleOpenedMsg{capsule: capsule, err: err}
	}
}

func (m mainLoopModel) cmdCreateCapsule(req models.CapsuleRequest) tea.Cmd {
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		_, err := serverAdapter.CreateCapsule(ctx, req)
		return capsuleCreatedMsg{err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
