package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ProposalSource откуда взята ближайшая дата
type ProposalSource string

const (
	SourceProposal ProposalSource = "proposal"
	SourceLocal    ProposalSource = "local"
	SourceNone     ProposalSource = "none"
)

// Selection результат согласования подсказок сервера с локальными данными
type Selection struct {
	EarliestDate types.Date
	HasEarliest  bool
	Source       ProposalSource

	// Окна сервера, которые по-прежнему свободны. nil, если окно не пришло или устарело
	EarliestProposal           *domain.ProposalWindow
	ShortestThroughputProposal *domain.ProposalWindow

	ResourcePolicy *domain.ResourcePolicy
	// ScannedDays сколько дней просмотрено локальным поиском (0, если принята дата сервера)
	ScannedDays int
}

// MinDate ищет ближайшую дату, на которую можно начать работы, просматривая
// не более MinDateScanDays дней начиная с сегодняшнего.
// Возвращает дату, количество просмотренных дней и признак успеха
func (e *Engine) MinDate() (types.Date, int, bool) {
	for offset := 0; offset < domain.MinDateScanDays; offset++ {
		date := e.today.AddDays(offset)
		if e.IsBookable(date) {
			return date, offset + 1, true
		}
	}
	return types.Date{}, domain.MinDateScanDays, false
}

// Reconcile принимает подсказки сервера, только если локальные данные подтверждают,
// что они еще доступны. Иначе ближайшая дата ищется локально.
// Подсказки для другого режима выполнения игнорируются целиком
func (e *Engine) Reconcile(proposal *domain.ScheduleProposal) Selection {
	selection := Selection{
		Source:         SourceNone,
		ResourcePolicy: e.policy,
	}

	if proposal != nil && proposal.Mode != "" && proposal.Mode != e.params.Mode {
		e.logger.Warn("Reconcile: proposal mode '%s' does not match package mode '%s', ignoring proposal",
			proposal.Mode, e.params.Mode)
		proposal = nil
	}

	if proposal != nil {
		selection.EarliestProposal = e.acceptWindow(proposal.EarliestProposal)
		selection.ShortestThroughputProposal = e.acceptWindow(proposal.ShortestThroughputProposal)

		date := proposal.EarliestBookableDate
		if !date.IsZero() && e.IsBookable(date) {
			selection.EarliestDate = date
			selection.HasEarliest = true
			selection.Source = SourceProposal
			return selection
		}
		if !date.IsZero() {
			e.logger.Info("Reconcile: proposed date %s is no longer available, scanning locally", date)
		}
	}

	date, scanned, ok := e.MinDate()
	selection.ScannedDays = scanned
	if ok {
		selection.EarliestDate = date
		selection.HasEarliest = true
		selection.Source = SourceLocal
	}
	return selection
}

// acceptWindow проверяет окно сервера по локальным данным
func (e *Engine) acceptWindow(w *domain.ProposalWindow) *domain.ProposalWindow {
	if w == nil || w.Start.IsZero() {
		return nil
	}

	date := types.DateIn(w.Start, e.loc)
	if !e.IsBookable(date) {
		return nil
	}

	if e.params.Mode == domain.ModeHours && !e.fitsHourWindow(date, w.Start) {
		return nil
	}

	accepted := *w
	return &accepted
}

// fitsHourWindow работы с началом в start помещаются в рабочие часы даты и не пересекают блокировки
func (e *Engine) fitsHourWindow(date types.Date, start time.Time) bool {
	if start.Before(e.now) {
		return false
	}

	end := start.Add(time.Duration(e.executionMinutes()) * time.Minute)
	workStart, workEnd := e.workingBounds(date)
	if start.Before(workStart) || end.After(workEnd) {
		return false
	}

	return !overlapsAny(start, end, e.IntervalsFor(date))
}
