package repository_test

import (
	"testing"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/domain/repository"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
)

func boardRequest(title, description string, category valueobject.Category, status valueobject.RequestStatus) *entity.Request {
	return &entity.Request{
		Title:       title,
		Description: description,
		Category:    category,
		Status:      status,
	}
}

func TestRequestFilter_Matches(t *testing.T) {
	req := boardRequest("Логотип для кофейни", "Минимализм и тёплые тона", valueobject.CategoryLogo, valueobject.RequestStatusOpen)

	cases := []struct {
		name   string
		filter repository.RequestFilter
		want   bool
	}{
		{"empty filter matches everything", repository.RequestFilter{}, true},
		{"search in title ignoring case", repository.RequestFilter{Search: "ЛОГОТИП"}, true},
		{"search in description", repository.RequestFilter{Search: "тёплые"}, true},
		{"search misses", repository.RequestFilter{Search: "упаковка"}, false},
		{"category exact", repository.RequestFilter{Category: "logo"}, true},
		{"category All passes everything", repository.RequestFilter{Category: "All"}, true},
		{"category mismatch", repository.RequestFilter{Category: "branding"}, false},
		{"status exact", repository.RequestFilter{Status: "open"}, true},
		{"status all passes everything", repository.RequestFilter{Status: "all"}, true},
		{"status mismatch", repository.RequestFilter{Status: "completed"}, false},
		{"predicates combine with AND", repository.RequestFilter{Search: "логотип", Category: "branding"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(req); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}
