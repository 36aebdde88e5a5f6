// Package legacy projects normalized ratings onto the original flat record
// shape. The flat shape predates multi-tenancy; older front-end code and
// third-party integrations depend on its exact field names and on
// confirmed being numeric 0/1. It is computed on every read and never
// stored.
package legacy

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/r8r-one/platform/internal/domain"
)

// scoreMidpoint is substituted for any missing category score; the rating
// scale runs 1-5.
const scoreMidpoint = 3

// Rating is the flat record older clients consume.
type Rating struct {
	ID               int     `json:"id"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
	RestaurantName   string  `json:"restaurantName"`
	BurritoTitle     string  `json:"burritoTitle"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Zipcode          string  `json:"zipcode,omitempty"`
	Rating           float64 `json:"rating"`
	Taste            float64 `json:"taste"`
	Value            float64 `json:"value"`
	Price            float64 `json:"price"`
	HasPotatoes      bool    `json:"hasPotatoes"`
	HasCheese        bool    `json:"hasCheese"`
	HasBacon         bool    `json:"hasBacon"`
	HasChorizo       bool    `json:"hasChorizo"`
	HasAvocado       bool    `json:"hasAvocado"`
	HasVegetables    bool    `json:"hasVegetables"`
	Review           string  `json:"review,omitempty"`
	ReviewerName     string  `json:"reviewerName,omitempty"`
	IdentityPassword string  `json:"identityPassword,omitempty"`
	GeneratedEmoji   string  `json:"generatedEmoji,omitempty"`
	ReviewerEmoji    string  `json:"reviewerEmoji,omitempty"`
	Confirmed        int     `json:"confirmed"`
	Image            string  `json:"image,omitempty"`
}

// ToLegacyRecord derives the flat shape from a normalized rating and its
// joined item. Pure and total except for the id parse fault: a normalized
// id without the expected prefix and numeric suffix is a data-integrity
// problem, not something to paper over with a fabricated id that
// downstream consumers would key on.
func ToLegacyRecord(r *domain.Rating, item *domain.Item) (*Rating, error) {
	id, err := ParseLegacyID(r.ID)
	if err != nil {
		return nil, err
	}

	return &Rating{
		ID:               id,
		CreatedAt:        formatTime(r.CreatedAt),
		UpdatedAt:        formatTime(r.UpdatedAt),
		RestaurantName:   item.VenueName,
		BurritoTitle:     item.Name,
		Latitude:         item.Latitude,
		Longitude:        item.Longitude,
		Zipcode:          item.Zipcode,
		Rating:           score(r.Scores, "overall"),
		Taste:            score(r.Scores, "taste"),
		Value:            score(r.Scores, "value"),
		Price:            r.PricePaid,
		HasPotatoes:      hasIngredient(r.Ingredients, "potatoes"),
		HasCheese:        hasIngredient(r.Ingredients, "cheese"),
		HasBacon:         hasIngredient(r.Ingredients, "bacon"),
		HasChorizo:       hasIngredient(r.Ingredients, "chorizo"),
		HasAvocado:       hasIngredient(r.Ingredients, "avocado"),
		HasVegetables:    hasIngredient(r.Ingredients, "vegetables"),
		Review:           r.Review,
		ReviewerName:     r.Reviewer.Name,
		IdentityPassword: r.Reviewer.IdentityHash,
		GeneratedEmoji:   r.Reviewer.Emoji,
		ReviewerEmoji:    r.Reviewer.Emoji,
		Confirmed:        confirmedFlag(r.Status),
		Image:            r.Reviewer.ImageFilename,
	}, nil
}

// ParseLegacyID extracts the numeric id from a normalized rating id.
func ParseLegacyID(id string) (int, error) {
	suffix, ok := strings.CutPrefix(id, domain.RatingIDPrefix)
	if !ok {
		return 0, fmt.Errorf("rating id %q missing %q prefix", id, domain.RatingIDPrefix)
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("rating id %q has non-numeric suffix", id)
	}
	return n, nil
}

// FormatLegacyID is the inverse of ParseLegacyID, used when old clients
// address a rating by its numeric id.
func FormatLegacyID(id int) string {
	return domain.RatingIDPrefix + strconv.Itoa(id)
}

func score(scores map[string]float64, key string) float64 {
	if v, ok := scores[key]; ok {
		return v
	}
	return scoreMidpoint
}

func hasIngredient(ingredients []string, name string) bool {
	for _, ing := range ingredients {
		if ing == name {
			return true
		}
	}
	return false
}

func confirmedFlag(status string) int {
	if status == domain.RatingStatusConfirmed {
		return 1
	}
	return 0
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
