package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFixtures(t *testing.T) (*Genre, *Movie, *Room) {
	t.Helper()

	genre, err := NewGenre("Action")
	require.NoError(t, err)

	movie, err := NewMovie("Inception", 120, false, genre)
	require.NoError(t, err)

	room, err := NewRoom(1, 10)
	require.NoError(t, err)

	return genre, movie, room
}

func newTestSession(t *testing.T, maxTickets int) *Session {
	t.Helper()

	_, movie, room := testFixtures(t)

	session, err := NewSession(time.Now().Add(time.Hour), maxTickets, movie, room)
	require.NoError(t, err)

	return session
}

func TestSession_GenerateTicket_AppendsAndBindsToSession(t *testing.T) {
	session := newTestSession(t, 5)

	ticket, err := session.GenerateTicket(3, true)

	require.NoError(t, err)
	require.Len(t, session.Tickets(), 1)
	assert.Same(t, ticket, session.Tickets()[0])
	assert.Equal(t, 3, ticket.SeatNumber)
	assert.True(t, ticket.HalfPrice)
	assert.Same(t, session, ticket.Session)
}

func TestSession_GenerateTicket_SeatBelowRange(t *testing.T) {
	session := newTestSession(t, 5)

	_, err := session.GenerateTicket(0, false)

	assert.ErrorIs(t, err, ErrSeatOutOfRange)
	assert.Empty(t, session.Tickets())
}

func TestSession_GenerateTicket_SeatAboveRange(t *testing.T) {
	session := newTestSession(t, 5)

	_, err := session.GenerateTicket(6, false)

	assert.ErrorIs(t, err, ErrSeatOutOfRange)
	assert.Empty(t, session.Tickets())
}

func TestSession_GenerateTicket_SeatAlreadyTaken(t *testing.T) {
	session := newTestSession(t, 5)

	_, err := session.GenerateTicket(5, false)
	require.NoError(t, err)

	_, err = session.GenerateTicket(5, true)

	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Len(t, session.Tickets(), 1)
}

func TestSession_GenerateTicket_AfterClose(t *testing.T) {
	session := newTestSession(t, 5)
	session.Close()

	_, err := session.GenerateTicket(1, false)

	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_GenerateTicket_NeverExceedsMaxTickets(t *testing.T) {
	session := newTestSession(t, 3)

	for seat := 1; seat <= 3; seat++ {
		_, err := session.GenerateTicket(seat, false)
		require.NoError(t, err)
		assert.LessOrEqual(t, session.TicketCount(), session.MaxTickets)
	}

	for seat := 1; seat <= 3; seat++ {
		_, err := session.GenerateTicket(seat, false)
		require.Error(t, err)
	}
	assert.Equal(t, 3, session.TicketCount())
}

func TestSession_AvailableSeats_ExcludesTakenSeats(t *testing.T) {
	session := newTestSession(t, 5)

	_, err := session.GenerateTicket(2, false)
	require.NoError(t, err)
	_, err = session.GenerateTicket(4, true)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5}, session.AvailableSeats())
	assert.Equal(t, 3, session.AvailableSeatCount())
}

func TestSession_AvailableSeats_EmptyWhenFull(t *testing.T) {
	session := newTestSession(t, 3)

	for seat := 1; seat <= 3; seat++ {
		_, err := session.GenerateTicket(seat, false)
		require.NoError(t, err)
	}

	assert.Empty(t, session.AvailableSeats())
	assert.Equal(t, 0, session.AvailableSeatCount())
}

// Available seats and taken seats partition [1, MaxTickets] in every
// reachable state.
func TestSession_AvailableSeats_PartitionsSeatRange(t *testing.T) {
	session := newTestSession(t, 6)

	for _, seat := range []int{5, 1, 3} {
		_, err := session.GenerateTicket(seat, false)
		require.NoError(t, err)

		seen := make(map[int]bool)
		for _, s := range session.AvailableSeats() {
			seen[s] = true
		}
		for _, ticket := range session.Tickets() {
			require.False(t, seen[ticket.SeatNumber], "seat %d both taken and available", ticket.SeatNumber)
			seen[ticket.SeatNumber] = true
		}
		assert.Len(t, seen, session.MaxTickets)
	}
}

func TestSession_Close_MarksSessionClosed(t *testing.T) {
	session := newTestSession(t, 5)
	require.False(t, session.Closed())

	session.Close()

	assert.True(t, session.Closed())
}

func TestSession_Close_IsIdempotent(t *testing.T) {
	session := newTestSession(t, 5)

	session.Close()
	session.Close()

	assert.True(t, session.Closed())
}

func TestSession_ApplyEdit_ChangesOnlyStartTimeAndMaxTickets(t *testing.T) {
	_, movie, room := testFixtures(t)

	start := time.Date(2025, 8, 30, 14, 0, 0, 0, time.UTC)
	session, err := NewSession(start, 5, movie, room)
	require.NoError(t, err)

	originalID := session.ID
	ticket, err := session.GenerateTicket(1, false)
	require.NoError(t, err)

	newStart := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	edited, err := NewSession(newStart, 7, movie, room)
	require.NoError(t, err)

	session.ApplyEdit(edited)

	assert.Equal(t, newStart, session.StartTime)
	assert.Equal(t, 7, session.MaxTickets)

	assert.Equal(t, originalID, session.ID)
	assert.Same(t, movie, session.Movie)
	assert.Same(t, room, session.Room)
	assert.False(t, session.Closed())
	require.Len(t, session.Tickets(), 1)
	assert.Same(t, ticket, session.Tickets()[0])
}

func TestSession_Tickets_ReturnsCopy(t *testing.T) {
	session := newTestSession(t, 5)

	_, err := session.GenerateTicket(1, false)
	require.NoError(t, err)

	tickets := session.Tickets()
	tickets[0] = nil

	require.Len(t, session.Tickets(), 1)
	assert.NotNil(t, session.Tickets()[0])
}

func TestSession_HydrateTickets_RebindsSessionReference(t *testing.T) {
	session := newTestSession(t, 5)

	restored := []*Ticket{
		RestoreTicket(session.ID, 2, false, session.UserID),
		RestoreTicket(session.ID, 4, true, session.UserID),
	}
	session.HydrateTickets(restored)

	require.Len(t, session.Tickets(), 2)
	for _, ticket := range session.Tickets() {
		assert.Same(t, session, ticket.Session)
	}
	assert.Equal(t, []int{1, 3, 5}, session.AvailableSeats())
}
