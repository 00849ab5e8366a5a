package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
)

const FallbackSuggestion = "I'd be happy to make a recommendation!"

type SuggestionService struct {
	generator TextGenerator
	menu      MenuServiceInterface
}

// NewSuggestionService takes an optional menu service used to fill requests
// that arrive without a menu snapshot.
func NewSuggestionService(generator TextGenerator, menu MenuServiceInterface) *SuggestionService {
	return &SuggestionService{generator: generator, menu: menu}
}

func (s *SuggestionService) Suggest(ctx context.Context, req domain.SuggestionRequest) (*domain.Suggestion, error) {
	if req.Category == "" {
		req.Category = domain.CategoryAll
	}

	switch {
	case req.MenuItems == nil && req.Restaurants == nil:
		if s.menu == nil {
			return nil, ErrIncompleteMenu
		}
		snapshot, err := s.menu.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("load menu snapshot: %w", err)
		}
		req.MenuItems = snapshot.MenuItems
		req.Restaurants = snapshot.Restaurants
	case req.MenuItems == nil || req.Restaurants == nil:
		return nil, ErrIncompleteMenu
	}

	prompt := BuildPrompt(req.Category, req.Preference, req.MenuItems, req.Restaurants)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		text = FallbackSuggestion
	}

	return &domain.Suggestion{
		Text:          text,
		FeaturedItems: FeaturedItems(text, req.MenuItems),
	}, nil
}

// BuildPrompt renders the concierge prompt. Only items of the requested
// category are listed unless category is "all"; restaurants keep their
// header even when none of their items survive the filter.
func BuildPrompt(category, preference string, menuItems []domain.MenuItem, restaurants []domain.Restaurant) string {
	byRestaurant := make(map[string][]domain.MenuItem)
	for _, item := range menuItems {
		if category == domain.CategoryAll || item.Category == category {
			byRestaurant[item.RestaurantID] = append(byRestaurant[item.RestaurantID], item)
		}
	}

	var b strings.Builder
	b.WriteString("You are a helpful restaurant AI assistant. Here are the available restaurants and their menu items:\n")
	for _, r := range restaurants {
		fmt.Fprintf(&b, "\n%s (%s):\n", r.Name, r.Cuisine)
		for _, item := range byRestaurant[r.ID] {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", item.Name, item.Description, item.Category)
		}
	}
	b.WriteString("\n")

	if p := strings.TrimSpace(preference); p != "" {
		fmt.Fprintf(&b, "The customer has the following preferences: %s. ", p)
	}

	target := "any dish"
	if category != domain.CategoryAll {
		target = category + " dishes"
	}
	fmt.Fprintf(&b, "Please provide personalized recommendations across all restaurants for %s.\n", target)
	b.WriteString("Consider dietary preferences if provided. Suggest specific dishes from different restaurants that might appeal to the customer.\n")
	b.WriteString("Keep it casual and brief, like a knowledgeable concierge would suggest.\n\n")
	b.WriteString("Also, return the exact names of 2-3 specific dishes you're recommending.")

	return b.String()
}

// FeaturedItems returns, in menu order, every item whose name occurs in text
// ignoring case. Overlapping names all match.
func FeaturedItems(text string, menuItems []domain.MenuItem) []domain.MenuItem {
	lowered := strings.ToLower(text)
	featured := []domain.MenuItem{}
	for _, item := range menuItems {
		if item.Name == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(item.Name)) {
			featured = append(featured, item)
		}
	}
	return featured
}
