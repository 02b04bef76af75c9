package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitlanehq/pitwall/internal/domain/prediction"
	"github.com/pitlanehq/pitwall/internal/domain/race"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
)

// RoundService manages betting-window lifecycle. Windows close automatically
// at the session start time; administrators can pin a window open, locked, or
// settled independently of the clock.
type RoundService struct {
	raceRepo  race.Repository
	roundRepo prediction.RoundRepository
	logger    *logging.Logger
	now       func() time.Time
}

func NewRoundService(
	raceRepo race.Repository,
	roundRepo prediction.RoundRepository,
	logger *logging.Logger,
) *RoundService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RoundService{
		raceRepo:  raceRepo,
		roundRepo: roundRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// RoundWindow is the effective state of one betting window as callers see it.
type RoundWindow struct {
	RaceID   string
	Session  race.SessionKind
	Status   prediction.RoundStatus
	Manual   bool
	Deadline time.Time
	Closed   bool
}

// SetStatus pins a window to a manual status, overriding the deadline.
func (s *RoundService) SetStatus(ctx context.Context, raceID string, kind race.SessionKind, status prediction.RoundStatus) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.SetStatus")
	defer span.End()

	parsed, ok := prediction.ParseRoundStatus(string(status))
	if !ok {
		return fmt.Errorf("%w: unknown round status %q", ErrInvalidInput, status)
	}
	if _, _, err := s.bettableSession(ctx, raceID, kind); err != nil {
		return err
	}

	state := prediction.RoundState{RaceID: raceID, Session: kind, Status: parsed}
	if err := s.roundRepo.Upsert(ctx, state); err != nil {
		return fmt.Errorf("upsert round state: %w", err)
	}
	s.logger.InfoContext(ctx, "round status pinned",
		"race_id", raceID,
		"session", string(kind),
		"status", string(parsed),
	)
	return nil
}

// ClearStatus removes the manual override so the deadline rules again.
// Clearing an unset window is a no-op.
func (s *RoundService) ClearStatus(ctx context.Context, raceID string, kind race.SessionKind) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.ClearStatus")
	defer span.End()

	if _, _, err := s.bettableSession(ctx, raceID, kind); err != nil {
		return err
	}
	if err := s.roundRepo.Delete(ctx, raceID, kind); err != nil {
		return fmt.Errorf("delete round state: %w", err)
	}
	return nil
}

// Window reports the effective state of one betting window.
func (s *RoundService) Window(ctx context.Context, raceID string, kind race.SessionKind) (RoundWindow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Window")
	defer span.End()

	_, deadline, err := s.bettableSession(ctx, raceID, kind)
	if err != nil {
		return RoundWindow{}, err
	}

	state, hasState, err := s.roundRepo.Get(ctx, raceID, kind)
	if err != nil {
		return RoundWindow{}, fmt.Errorf("get round state: %w", err)
	}

	now := s.now()
	window := RoundWindow{
		RaceID:   raceID,
		Session:  kind,
		Manual:   hasState,
		Deadline: deadline,
		Closed:   prediction.BettingClosed(state.Status, hasState, deadline, now),
	}
	if hasState {
		window.Status = state.Status
	} else if window.Closed {
		window.Status = prediction.RoundLocked
	} else {
		window.Status = prediction.RoundOpen
	}
	return window, nil
}

// WindowClosed is the gate the bet path uses.
func (s *RoundService) WindowClosed(ctx context.Context, raceID string, kind race.SessionKind) (bool, error) {
	window, err := s.Window(ctx, raceID, kind)
	if err != nil {
		return false, err
	}
	return window.Closed, nil
}

func (s *RoundService) bettableSession(ctx context.Context, raceID string, kind race.SessionKind) (race.Race, time.Time, error) {
	raceID = strings.TrimSpace(raceID)
	if raceID == "" {
		return race.Race{}, time.Time{}, fmt.Errorf("%w: race_id is required", ErrInvalidInput)
	}
	if !kind.IsBettable() {
		return race.Race{}, time.Time{}, fmt.Errorf("%w: session %s takes no bets", ErrInvalidInput, kind)
	}

	raceEvent, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return race.Race{}, time.Time{}, fmt.Errorf("get race: %w", err)
	}
	if !exists {
		return race.Race{}, time.Time{}, fmt.Errorf("%w: race %s", ErrNotFound, raceID)
	}

	deadline, scheduled := raceEvent.SessionStart(kind)
	if !scheduled {
		return race.Race{}, time.Time{}, fmt.Errorf("%w: race %s has no %s session", ErrInvalidInput, raceID, kind)
	}
	return raceEvent, deadline, nil
}
