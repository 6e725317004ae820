package models

import "testing"

func TestIsValidEmotionCategory(t *testing.T) {
	for _, label := range EmotionCategories {
		if !IsValidEmotionCategory(label) {
			t.Errorf("label %q should be valid", label)
		}
	}

	invalid := []string{"", "feliz", "Entediado", "Happy", "FELIZ"}
	for _, label := range invalid {
		if IsValidEmotionCategory(label) {
			t.Errorf("label %q should be invalid", label)
		}
	}
}

func TestEmotionCategoryCount(t *testing.T) {
	if len(EmotionCategories) != 16 {
		t.Fatalf("expected 16 categories, got %d", len(EmotionCategories))
	}
}
