package normalize

import (
	"testing"

	"github.com/ternarybob/colligo/internal/models"
)

func TestNormalizeTitle(t *testing.T) {
	svc := NewService("USD", "US")

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"collapses whitespace", "  software   engineer ", "Software Engineer"},
		{"expands sr synonym", "sr backend developer", "Senior Backend Developer"},
		{"expands swe synonym", "swe", "Software Engineer"},
		{"small words stay lower", "head of engineering", "Head of Engineering"},
		{"small word capitalized when leading", "of counsel", "Of Counsel"},
		{"empty title", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.NormalizeTitle(tt.title); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeSalary(t *testing.T) {
	svc := NewService("USD", "US")

	tests := []struct {
		name         string
		salary       models.Salary
		wantMin      float64
		wantMax      float64
		wantCurrency string
	}{
		{
			name:         "hourly annualizes at 2080 hours",
			salary:       models.Salary{Min: 10, Max: 20, Period: models.SalaryPeriodHour, Currency: "usd"},
			wantMin:      20800,
			wantMax:      41600,
			wantCurrency: "USD",
		},
		{
			name:         "daily annualizes at 260 workdays",
			salary:       models.Salary{Min: 400, Max: 600, Period: models.SalaryPeriodDay},
			wantMin:      104000,
			wantMax:      156000,
			wantCurrency: "USD",
		},
		{
			name:         "monthly annualizes at 12",
			salary:       models.Salary{Min: 5000, Max: 8000, Period: models.SalaryPeriodMonth},
			wantMin:      60000,
			wantMax:      96000,
			wantCurrency: "USD",
		},
		{
			name:         "yearly passes through",
			salary:       models.Salary{Min: 120000, Max: 150000, Period: models.SalaryPeriodYear},
			wantMin:      120000,
			wantMax:      150000,
			wantCurrency: "USD",
		},
		{
			name:         "unknown period treated as annual",
			salary:       models.Salary{Min: 90000, Max: 110000},
			wantMin:      90000,
			wantMax:      110000,
			wantCurrency: "USD",
		},
		{
			name:         "foreign currency carried through unconverted",
			salary:       models.Salary{Min: 50000, Max: 70000, Period: models.SalaryPeriodYear, Currency: "EUR"},
			wantMin:      50000,
			wantMax:      70000,
			wantCurrency: "EUR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := &models.JobDTO{Title: "x", Salary: &tt.salary}
			got := svc.Normalize(dto).Salary

			if got.NormalizedAnnualMin != tt.wantMin {
				t.Errorf("NormalizedAnnualMin = %v, want %v", got.NormalizedAnnualMin, tt.wantMin)
			}
			if got.NormalizedAnnualMax != tt.wantMax {
				t.Errorf("NormalizedAnnualMax = %v, want %v", got.NormalizedAnnualMax, tt.wantMax)
			}
			if got.NormalizedCurrency != tt.wantCurrency {
				t.Errorf("NormalizedCurrency = %q, want %q", got.NormalizedCurrency, tt.wantCurrency)
			}
		})
	}
}

func TestNormalizeLocation(t *testing.T) {
	svc := NewService("USD", "US")

	t.Run("country upper-cased", func(t *testing.T) {
		dto := &models.JobDTO{Location: models.Location{Country: "de", City: "Berlin"}}
		if got := svc.Normalize(dto).Location.Country; got != "DE" {
			t.Errorf("Country = %q, want DE", got)
		}
	})

	t.Run("missing country defaults", func(t *testing.T) {
		dto := &models.JobDTO{Location: models.Location{City: "Austin"}}
		if got := svc.Normalize(dto).Location.Country; got != "US" {
			t.Errorf("Country = %q, want US", got)
		}
	})

	t.Run("remote inferred from title", func(t *testing.T) {
		dto := &models.JobDTO{Title: "Remote Backend Engineer"}
		if got := svc.Normalize(dto).Location.RemoteType; got != models.RemoteTypeRemote {
			t.Errorf("RemoteType = %q, want remote", got)
		}
	})

	t.Run("hybrid inferred from description", func(t *testing.T) {
		dto := &models.JobDTO{Description: "We offer a hybrid working model."}
		if got := svc.Normalize(dto).Location.RemoteType; got != models.RemoteTypeHybrid {
			t.Errorf("RemoteType = %q, want hybrid", got)
		}
	})

	t.Run("defaults to onsite", func(t *testing.T) {
		dto := &models.JobDTO{Title: "Backend Engineer"}
		if got := svc.Normalize(dto).Location.RemoteType; got != models.RemoteTypeOnsite {
			t.Errorf("RemoteType = %q, want onsite", got)
		}
	})

	t.Run("declared type kept", func(t *testing.T) {
		dto := &models.JobDTO{
			Title:    "Remote-friendly team",
			Location: models.Location{RemoteType: models.RemoteTypeOnsite},
		}
		if got := svc.Normalize(dto).Location.RemoteType; got != models.RemoteTypeOnsite {
			t.Errorf("RemoteType = %q, want onsite", got)
		}
	})
}

func TestInferSeniority(t *testing.T) {
	tests := []struct {
		text string
		want models.Seniority
	}{
		{"Junior Developer", models.SeniorityEntry},
		{"Graduate Program 2026", models.SeniorityEntry},
		{"Senior Software Engineer", models.SenioritySenior},
		{"Staff Engineer", models.SenioritySenior},
		{"Tech Lead", models.SeniorityLead},
		{"Head of Platform", models.SeniorityLead},
		{"Engineering Director", models.SeniorityDirector},
		{"VP of Engineering", models.SeniorityVP},
		{"Chief Technology Officer", models.SeniorityCXO},
		{"Software Engineer", models.SeniorityMid},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := InferSeniority(tt.text); got != tt.want {
				t.Errorf("InferSeniority(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "just text", "just text"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"entities decoded", "R&amp;D &nbsp; team", "R&D team"},
		{"unterminated tag left alone", "broken <tag text", "broken <tag text"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	svc := NewService("USD", "US")
	dto := &models.JobDTO{
		Title:    "sr engineer",
		Location: models.Location{Country: "us"},
	}

	svc.Normalize(dto)

	if dto.Title != "sr engineer" {
		t.Errorf("input title mutated to %q", dto.Title)
	}
	if dto.Location.Country != "us" {
		t.Errorf("input country mutated to %q", dto.Location.Country)
	}
}
