package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reviewdeck_backend/internal/widgetconfig"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func eff(id string, rating int, text string, at time.Time, pinned bool) EffectiveReview {
	return EffectiveReview{ID: id, Rating: rating, Text: text, SourceCreatedAt: at, Pinned: pinned}
}

func ids(list []EffectiveReview) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.ID
	}
	return out
}

func TestOrder_NewestFirstByDefault(t *testing.T) {
	list := []EffectiveReview{
		eff("a", 5, "x", day(1), false),
		eff("b", 4, "x", day(3), false),
		eff("c", 3, "x", day(2), false),
	}
	Order(list, widgetconfig.SortNewest)
	assert.Equal(t, []string{"b", "c", "a"}, ids(list))
}

func TestOrder_PinnedPrecedence(t *testing.T) {
	// Pinned reviews come first irrespective of source timestamps, keeping
	// their incoming order among themselves.
	list := []EffectiveReview{
		eff("a", 5, "x", day(1), false),
		eff("p1", 2, "x", day(2), true),
		eff("b", 4, "x", day(5), false),
		eff("p2", 1, "x", day(4), true),
	}
	Order(list, widgetconfig.SortNewest)
	assert.Equal(t, []string{"p1", "p2", "b", "a"}, ids(list))
}

func TestOrder_RatingKeys(t *testing.T) {
	list := []EffectiveReview{
		eff("a", 3, "x", day(1), false),
		eff("b", 5, "x", day(2), false),
		eff("c", 1, "x", day(3), false),
	}
	Order(list, widgetconfig.SortHighest)
	assert.Equal(t, []string{"b", "a", "c"}, ids(list))

	Order(list, widgetconfig.SortLowest)
	assert.Equal(t, []string{"c", "a", "b"}, ids(list))
}

func TestOrder_RandomKeepsPinnedFirst(t *testing.T) {
	list := []EffectiveReview{
		eff("p", 5, "x", day(1), true),
		eff("a", 4, "x", day(2), false),
		eff("b", 3, "x", day(3), false),
	}
	Order(list, widgetconfig.SortRandom)
	assert.Equal(t, "p", list[0].ID)
	assert.ElementsMatch(t, []string{"a", "b"}, ids(list[1:]))
}

func TestFilter_MinRating(t *testing.T) {
	policy := widgetconfig.Default().Reviews
	policy.MinRating = 4
	list := Filter([]EffectiveReview{
		eff("a", 5, "x", day(1), false),
		eff("b", 3, "x", day(2), false),
		eff("c", 4, "x", day(3), false),
	}, policy)
	assert.Equal(t, []string{"a", "c"}, ids(list))
}

func TestFilter_ShowEmpty(t *testing.T) {
	policy := widgetconfig.Default().Reviews
	policy.ShowEmpty = false
	list := Filter([]EffectiveReview{
		eff("a", 5, "Nice", day(1), false),
		eff("b", 5, "   ", day(2), false),
		eff("c", 5, "", day(3), false),
	}, policy)
	assert.Equal(t, []string{"a"}, ids(list))
}

func TestFilter_IncludeExclude(t *testing.T) {
	policy := widgetconfig.Default().Reviews
	policy.Include = []string{"coffee"}
	policy.Exclude = []string{"rude"}
	list := Filter([]EffectiveReview{
		eff("a", 5, "Best COFFEE in town", day(1), false),
		eff("b", 5, "Nice tea", day(2), false),
		eff("c", 5, "coffee but rude staff", day(3), false),
	}, policy)
	assert.Equal(t, []string{"a"}, ids(list))
}

func TestFilter_BaselinePolicyIsNoop(t *testing.T) {
	policy := widgetconfig.Default().Reviews
	list := []EffectiveReview{
		eff("a", 1, "", day(1), false),
		eff("b", 5, "text", day(2), false),
	}
	assert.Equal(t, []string{"a", "b"}, ids(Filter(list, policy)))
}

func TestCap(t *testing.T) {
	list := []EffectiveReview{
		eff("a", 5, "x", day(1), false),
		eff("b", 5, "x", day(2), false),
		eff("c", 5, "x", day(3), false),
	}
	assert.Len(t, Cap(list, 0), 3)
	assert.Len(t, Cap(list, 5), 3)
	assert.Equal(t, []string{"a", "b"}, ids(Cap(list, 2)))
}
