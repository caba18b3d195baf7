// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"time"

	"github.com/bloghub/bloghub/internal/model"
)

// Fixture data: the seed accounts and posts the store starts from. The demo
// resetter restores the post set from here as well.

// FixtureUsers returns the seed accounts. These form the login allow-list;
// all of them share the demo password.
func FixtureUsers() []model.User {
	return []model.User{
		{
			ID:        "1",
			Email:     "admin@blog.com",
			Username:  "admin",
			Role:      model.RoleAdmin,
			CreatedAt: mustTime("2024-01-01T00:00:00Z"),
			Avatar:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			ID:        "2",
			Email:     "user@blog.com",
			Username:  "john_doe",
			Role:      model.RoleReader,
			CreatedAt: mustTime("2024-01-02T00:00:00Z"),
			Avatar:    "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		{
			ID:        "3",
			Email:     "sarah@blog.com",
			Username:  "sarah_writer",
			Role:      model.RoleReader,
			CreatedAt: mustTime("2024-01-03T00:00:00Z"),
			Avatar:    "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
	}
}

// FixturePosts returns the seed post collection in storage order
// (most recent first).
func FixturePosts() []model.Post {
	users := FixtureUsers()
	john, sarah := users[1], users[2]

	return []model.Post{
		{
			ID:    "1",
			Title: "The Future of Web Development: Trends to Watch in 2025",
			Content: `# The Future of Web Development

Web development is evolving at an unprecedented pace. Here are the key trends shaping our industry:

## 1. AI-Powered Development Tools

AI assistants are revolutionizing how we write code, debug issues, and optimize performance.

## 2. WebAssembly (WASM) Adoption

WebAssembly is enabling near-native performance in web applications, opening up new possibilities for complex applications running directly in the browser.

## 3. Edge Computing

Moving computation closer to users through edge computing is reducing latency and improving user experience globally.

## Conclusion

The future of web development is bright, with AI, performance optimizations, and new paradigms leading the way.`,
			Excerpt:       "Exploring the cutting-edge trends that will define web development in 2025, from AI-powered tools to edge computing.",
			Author:        john,
			Status:        model.StatusApproved,
			Category:      "Technology",
			Tags:          []string{"Web Development", "AI", "WebAssembly", "Edge Computing"},
			Likes:         124,
			Comments:      23,
			Views:         1456,
			CreatedAt:     mustTime("2024-12-15T10:00:00Z"),
			UpdatedAt:     mustTime("2024-12-15T10:00:00Z"),
			PublishedAt:   timePtr(mustTime("2024-12-15T12:00:00Z")),
			FeaturedImage: "https://images.pexels.com/photos/11035380/pexels-photo-11035380.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			ID:    "2",
			Title: "Building Scalable React Applications: Best Practices",
			Content: `# Building Scalable React Applications

Creating maintainable and scalable React applications requires following established patterns and best practices.

## Component Architecture

- Keep components small and focused
- Use composition over inheritance
- Implement proper prop validation

## State Management

Choose the right state management solution based on your application's complexity:

- **Local State**: useState and useReducer for component-level state
- **Context API**: For shared state across component trees
- **Redux/Zustand**: For complex global state management

## Performance Optimization

- Implement proper memoization with useMemo and useCallback
- Use React.lazy for code splitting
- Optimize bundle size with proper tree shaking`,
			Excerpt:       "A comprehensive guide to building maintainable and scalable React applications using modern best practices.",
			Author:        sarah,
			Status:        model.StatusApproved,
			Category:      "Programming",
			Tags:          []string{"React", "JavaScript", "Best Practices", "Performance"},
			Likes:         89,
			Comments:      15,
			Views:         987,
			CreatedAt:     mustTime("2024-12-14T14:30:00Z"),
			UpdatedAt:     mustTime("2024-12-14T14:30:00Z"),
			PublishedAt:   timePtr(mustTime("2024-12-14T16:00:00Z")),
			FeaturedImage: "https://images.pexels.com/photos/11035471/pexels-photo-11035471.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			ID:    "3",
			Title: "Understanding Modern CSS: Grid, Flexbox, and Beyond",
			Content: `# Modern CSS Layout Techniques

CSS has evolved dramatically over the past few years. Let's explore the modern layout techniques that every developer should master.

## CSS Grid vs Flexbox

### When to Use Grid
- Two-dimensional layouts
- Complex page layouts

### When to Use Flexbox
- One-dimensional layouts
- Component-level alignment

## CSS Custom Properties

Custom properties (CSS variables) provide powerful theming capabilities.

## Container Queries

The latest addition to CSS, container queries allow responsive design based on container size rather than viewport size.`,
			Excerpt:       "Master modern CSS layout techniques including Grid, Flexbox, and the latest container queries for responsive design.",
			Author:        john,
			Status:        model.StatusPending,
			Category:      "Design",
			Tags:          []string{"CSS", "Layout", "Responsive Design", "Grid", "Flexbox"},
			Likes:         45,
			Comments:      8,
			Views:         234,
			CreatedAt:     mustTime("2024-12-13T09:15:00Z"),
			UpdatedAt:     mustTime("2024-12-13T09:15:00Z"),
			FeaturedImage: "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			ID:    "4",
			Title: "Database Design Principles for Modern Applications",
			Content: `# Database Design Principles

Proper database design is crucial for application performance and maintainability.

## Normalization vs Denormalization

Normalize for consistency; denormalize for read-heavy workloads and reporting.

## Indexing Strategies

- Primary keys are automatically indexed
- Create indexes on frequently queried columns
- Avoid over-indexing as it slows down writes

## ACID Properties

- **Atomicity**: All or nothing transactions
- **Consistency**: Data integrity constraints
- **Isolation**: Concurrent transaction handling
- **Durability**: Permanent data storage`,
			Excerpt:       "Essential database design principles every developer should understand for building robust and scalable applications.",
			Author:        sarah,
			Status:        model.StatusApproved,
			Category:      "Database",
			Tags:          []string{"Database", "SQL", "Design Patterns", "Performance"},
			Likes:         67,
			Comments:      12,
			Views:         543,
			CreatedAt:     mustTime("2024-12-12T16:45:00Z"),
			UpdatedAt:     mustTime("2024-12-12T16:45:00Z"),
			PublishedAt:   timePtr(mustTime("2024-12-12T18:00:00Z")),
			FeaturedImage: "https://images.pexels.com/photos/1181677/pexels-photo-1181677.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
		{
			ID:    "5",
			Title: "Getting Started with TypeScript: A Beginner's Guide",
			Content: `# TypeScript for Beginners

TypeScript adds static typing to JavaScript, making your code more reliable and easier to maintain.

## Why TypeScript?

- **Better Developer Experience**: IntelliSense and autocomplete
- **Early Error Detection**: Catch errors at compile time
- **Improved Code Documentation**: Types serve as documentation
- **Refactoring Safety**: Confident code changes

## Advanced Features

- Union types for flexible parameters
- Generic types for reusable components
- Utility types for type transformations`,
			Excerpt:       "A comprehensive introduction to TypeScript for JavaScript developers looking to add type safety to their projects.",
			Author:        john,
			Status:        model.StatusRejected,
			Category:      "Programming",
			Tags:          []string{"TypeScript", "JavaScript", "Programming", "Tutorial"},
			Likes:         32,
			Comments:      5,
			Views:         178,
			CreatedAt:     mustTime("2024-12-11T11:20:00Z"),
			UpdatedAt:     mustTime("2024-12-11T11:20:00Z"),
			FeaturedImage: "https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=800",
		},
	}
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(t time.Time) *time.Time {
	return &t
}
