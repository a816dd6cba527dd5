package main

import (
	"fmt"

	"github.com/spf13/cobra"

	getAvailableDatesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getCompletionHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_completion"
	getScheduleProposalHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_schedule_proposal"
	plannerService "github.com/m04kA/SMC-SchedulingService/internal/service/planner"
	getAvailableDatesUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	getCompletionUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_completion"
	getScheduleProposalUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_schedule_proposal"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	slotsDate string

	datesFrom string
	datesDays int

	completionDate          string
	completionTime          string
	completionIncludeBuffer bool
	completionViewerTZ      string

	minDateViewerTZ string
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List hour-mode slots for a date",
	RunE:  runSlots,
}

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Show per-date availability with reasons",
	RunE:  runDates,
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Project execution and buffer end for a start",
	RunE:  runCompletion,
}

var minDateCmd = &cobra.Command{
	Use:     "min-date",
	Short:   "Reconcile the earliest bookable date",
	Aliases: []string{"proposal"},
	RunE:    runMinDate,
}

func init() {
	slotsCmd.Flags().StringVar(&slotsDate, "date", "", "Date in the professional's zone (YYYY-MM-DD)")
	_ = slotsCmd.MarkFlagRequired("date")

	datesCmd.Flags().StringVar(&datesFrom, "from", "", "First date (YYYY-MM-DD), today by default")
	datesCmd.Flags().IntVar(&datesDays, "days", 0, "Number of days, server default when omitted")

	completionCmd.Flags().StringVar(&completionDate, "date", "", "Start date (YYYY-MM-DD)")
	completionCmd.Flags().StringVar(&completionTime, "time", "", "Start time (HH:MM), required in hours mode")
	completionCmd.Flags().BoolVar(&completionIncludeBuffer, "include-buffer", false, "Also project the buffer end")
	completionCmd.Flags().StringVar(&completionViewerTZ, "viewer-tz", "", "Viewer timezone (IANA name or UTC offset)")
	_ = completionCmd.MarkFlagRequired("date")

	minDateCmd.Flags().StringVar(&minDateViewerTZ, "viewer-tz", "", "Viewer timezone (IANA name or UTC offset)")

	rootCmd.AddCommand(slotsCmd, datesCmd, completionCmd, minDateCmd)
}

// session фикстура и собранный по ней planner
type session struct {
	fixture *Fixture
	planner *plannerService.Service
	log     Logger
}

func openSession(cmd *cobra.Command) (*session, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	fixture, err := LoadFixture(fixturePath)
	if err != nil {
		return nil, err
	}

	planner, err := fixture.BuildPlanner(cmd.Context(), log)
	if err != nil {
		return nil, err
	}

	return &session{fixture: fixture, planner: planner, log: log}, nil
}

func runSlots(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	date, err := types.ParseDate(slotsDate)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}

	resp, err := getAvailableSlotsUC.NewUseCase(s.planner, nil, s.log).Execute(cmd.Context(), &getAvailableSlotsUC.Request{
		ProjectID:       s.fixture.ProjectID,
		SubprojectIndex: s.fixture.SubprojectIndex,
		Date:            date,
	})
	if err != nil {
		return err
	}

	return printJSON(cmd, getAvailableSlotsHandler.FromUseCaseResponse(resp))
}

func runDates(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	req := &getAvailableDatesUC.Request{
		ProjectID:       s.fixture.ProjectID,
		SubprojectIndex: s.fixture.SubprojectIndex,
		Days:            datesDays,
	}
	if datesFrom != "" {
		from, err := types.ParseDate(datesFrom)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		req.From = &from
	}

	resp, err := getAvailableDatesUC.NewUseCase(s.planner, s.log).Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printJSON(cmd, getAvailableDatesHandler.FromUseCaseResponse(resp))
}

func runCompletion(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	date, err := types.ParseDate(completionDate)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}

	req := &getCompletionUC.Request{
		ProjectID:       s.fixture.ProjectID,
		SubprojectIndex: s.fixture.SubprojectIndex,
		Date:            date,
		IncludeBuffer:   completionIncludeBuffer,
		ViewerTimezone:  completionViewerTZ,
	}
	if completionTime != "" {
		ts, err := types.NewTimeStringFromString(completionTime)
		if err != nil {
			return fmt.Errorf("--time: %w", err)
		}
		req.Time = &ts
	}

	resp, err := getCompletionUC.NewUseCase(s.planner, s.log).Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printJSON(cmd, getCompletionHandler.FromUseCaseResponse(resp))
}

func runMinDate(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	resp, err := getScheduleProposalUC.NewUseCase(s.planner, nil, s.log).Execute(cmd.Context(), &getScheduleProposalUC.Request{
		ProjectID:       s.fixture.ProjectID,
		SubprojectIndex: s.fixture.SubprojectIndex,
		ViewerTimezone:  minDateViewerTZ,
	})
	if err != nil {
		return err
	}

	return printJSON(cmd, getScheduleProposalHandler.FromUseCaseResponse(resp))
}
