package services

import (
	"context"
	"sort"
	"strings"

	"frontdesk/constants"
	apperrors "frontdesk/errors"
	"frontdesk/models"
	"frontdesk/types"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/shopspring/decimal"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const minNameSimilarity = 0.6

// GuestService projects guests out of the booking store. Guests are never stored.
type GuestService struct {
	db *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{db: db}
}

// List returns every guest with an email on file, by name.
func (s *GuestService) List(ctx context.Context) ([]types.GuestSummary, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("guest_email <> ''").
		Order("check_in_date desc, id desc").
		Find(&bookings).Error
	if err != nil {
		return nil, dbError("booking", err)
	}
	return GroupGuests(bookings), nil
}

// Get looks a guest up by email, ignoring case.
func (s *GuestService) Get(ctx context.Context, email string) (*types.GuestSummary, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return nil, apperrors.Validation("email is required", "email")
	}

	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("LOWER(guest_email) = ?", key).
		Order("check_in_date desc, id desc").
		Find(&bookings).Error
	if err != nil {
		return nil, dbError("booking", err)
	}
	guests := GroupGuests(bookings)
	if len(guests) == 0 {
		return nil, apperrors.NotFound("guest")
	}
	return &guests[0], nil
}

// Search matches guests by name, tolerating accents and small typos.
func (s *GuestService) Search(ctx context.Context, query string) ([]types.GuestSummary, error) {
	guests, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	q := normalizeInput(query)
	if q == "" {
		return guests, nil
	}

	names := make([]string, 0, len(guests))
	for _, g := range guests {
		names = append(names, normalizeInput(g.Name))
	}
	closest := ""
	if len(names) > 0 {
		closest = createMatcher(names).Closest(q)
	}

	type scored struct {
		guest types.GuestSummary
		score float64
	}
	var hits []scored
	for i, g := range guests {
		name := names[i]
		score := calculateSimilarity(q, name)
		switch {
		case strings.Contains(name, q) || strings.Contains(strings.ToLower(g.Email), q):
			score += 1
		case name == closest && score >= minNameSimilarity/2:
		case score >= minNameSimilarity:
		default:
			continue
		}
		hits = append(hits, scored{guest: g, score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]types.GuestSummary, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.guest)
	}
	return out, nil
}

// GroupGuests folds bookings into guests keyed by lower-cased email. Contact details
// come from the guest's most recent booking. Bookings without an email are skipped.
func GroupGuests(bookings []models.Booking) []types.GuestSummary {
	index := make(map[string]int)
	var guests []types.GuestSummary

	ordered := make([]models.Booking, len(bookings))
	copy(ordered, bookings)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CheckInDate.Equal(ordered[j].CheckInDate) {
			return ordered[i].CheckInDate.After(ordered[j].CheckInDate)
		}
		return ordered[i].ID > ordered[j].ID
	})

	for _, b := range ordered {
		key := b.GuestKey()
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			guests = append(guests, types.GuestSummary{
				Email:      key,
				Name:       b.GuestName,
				Phone:      b.GuestPhone,
				Country:    b.GuestCountry,
				TotalSpent: decimal.Zero,
			})
			i = len(guests) - 1
			index[key] = i
		}
		g := &guests[i]
		g.TotalBookings++
		g.Bookings = append(g.Bookings, b)

		switch b.Status {
		case constants.BookingStatusCompleted:
			g.CompletedStays++
			g.TotalSpent = g.TotalSpent.Add(b.SettledAmount).Add(b.AdvanceAmount)
		case constants.BookingStatusUpcoming:
			g.UpcomingBookings++
		}
		if b.Status == constants.BookingStatusCompleted || b.Status == constants.BookingStatusCheckedIn {
			if g.LastStay == nil || b.CheckInDate.After(*g.LastStay) {
				d := b.CheckInDate
				g.LastStay = &d
			}
		}
	}

	sort.SliceStable(guests, func(i, j int) bool {
		return strings.ToLower(guests[i].Name) < strings.ToLower(guests[j].Name)
	})
	return guests
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity is 1 - levenshtein distance / longer length.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
