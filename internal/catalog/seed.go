package catalog

import (
	"github.com/shopspring/decimal"

	"appmart/internal/model"
)

// DefaultSeed returns the built-in sample catalogue used when no external
// seed source is configured.
func DefaultSeed() []model.Product {
	return []model.Product{
		{
			Name:        "AI Assistant Pro",
			Description: "A powerful AI assistant that helps you automate tasks, generate content, and improve productivity.",
			Price:       decimal.RequireFromString("49.99"),
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Productivity",
			Featured:    1,
			Rating:      decimal.RequireFromString("4.5"),
			ReviewCount: 128,
			Badge:       badge("TRENDING"),
		},
		{
			Name:        "DataViz Analytics",
			Description: "Comprehensive data visualization tool with AI-powered insights and interactive dashboards.",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://images.unsplash.com/photo-1517292987719-0369a794ec0f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Business",
			Featured:    1,
			Rating:      decimal.RequireFromString("4.0"),
			ReviewCount: 94,
		},
		{
			Name:        "Social Media Manager",
			Description: "All-in-one platform to schedule posts, analyze engagement, and grow your social media presence.",
			Price:       decimal.RequireFromString("39.99"),
			Image:       "https://images.unsplash.com/photo-1555421689-3f034debb7a6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Social Media",
			Featured:    1,
			Rating:      decimal.RequireFromString("5.0"),
			ReviewCount: 76,
			Badge:       badge("NEW"),
		},
		{
			Name:        "Code Assistant",
			Description: "AI-powered coding assistant that helps you write better code faster with smart suggestions.",
			Price:       decimal.RequireFromString("59.99"),
			Image:       "https://images.unsplash.com/photo-1531482615713-2afd69097998?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Development",
			Featured:    1,
			Rating:      decimal.RequireFromString("4.7"),
			ReviewCount: 152,
		},
		{
			Name:        "Content Creator Studio",
			Description: "Create professional-quality content with AI-powered tools for writing, design, and multimedia.",
			Price:       decimal.RequireFromString("69.99"),
			Image:       "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Productivity",
			Featured:    1,
			Rating:      decimal.RequireFromString("3.5"),
			ReviewCount: 63,
		},
		{
			Name:        "Project Manager Pro",
			Description: "Comprehensive project management solution with AI-powered task allocation and analytics.",
			Price:       decimal.RequireFromString("89.99"),
			Image:       "https://images.unsplash.com/photo-1527689368864-3a821dbccc34?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Business",
			Featured:    1,
			Rating:      decimal.RequireFromString("4.9"),
			ReviewCount: 217,
			Badge:       badge("BESTSELLER"),
		},
	}
}

func badge(label string) *string {
	return &label
}
