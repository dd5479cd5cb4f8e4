package matcher

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		suggestion string
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "case-insensitive exact match",
			suggestion: "vegetarian",
			candidates: []string{"Vegetarian", "Vegan", "Quick"},
			want:       "Vegetarian",
			wantOK:     true,
		},
		{
			name:       "exact match preferred over substring",
			suggestion: "vegan",
			candidates: []string{"Vegan Breakfast", "Vegan"},
			want:       "Vegan",
			wantOK:     true,
		},
		{
			name:       "candidate contained in suggestion",
			suggestion: "A great dessert option",
			candidates: []string{"Dessert", "Breakfast"},
			want:       "Dessert",
			wantOK:     true,
		},
		{
			name:       "suggestion contained in candidate",
			suggestion: "vegetar",
			candidates: []string{"Vegetarian", "Quick"},
			want:       "Vegetarian",
			wantOK:     true,
		},
		{
			name:       "no match is reported, not guessed",
			suggestion: "Savory",
			candidates: []string{"Spicy", "Mild"},
			wantOK:     false,
		},
		{
			name:       "tie broken by input order",
			suggestion: "veg",
			candidates: []string{"Vegetarian", "Vegan"},
			want:       "Vegetarian",
			wantOK:     true,
		},
		{
			name:       "tie break follows reordered input",
			suggestion: "veg",
			candidates: []string{"Vegan", "Vegetarian"},
			want:       "Vegan",
			wantOK:     true,
		},
		{
			name:       "empty suggestion",
			suggestion: "",
			candidates: []string{"Dessert"},
			wantOK:     false,
		},
		{
			name:       "whitespace-only suggestion",
			suggestion: "   \n",
			candidates: []string{"Dessert"},
			wantOK:     false,
		},
		{
			name:       "empty candidates",
			suggestion: "Dessert",
			candidates: nil,
			wantOK:     false,
		},
		{
			name:       "surrounding whitespace trimmed",
			suggestion: "  Dessert \n",
			candidates: []string{"Dessert"},
			want:       "Dessert",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.suggestion, tt.candidates)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.suggestion, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.suggestion, got, tt.want)
			}
		})
	}
}
