package main

import "time"

const fence = "```"

func mustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// samplePosts is written to storage the first time a store starts with
// nothing persisted.
func samplePosts() []Post {
	created := []time.Time{
		mustParseTime("2023-01-15T12:00:00Z"),
		mustParseTime("2023-02-20T15:30:00Z"),
		mustParseTime("2023-03-10T09:45:00Z"),
	}

	return []Post{
		{
			ID:    "1",
			Title: "Getting Started with React",
			Content: `
# Getting Started with React

React is a JavaScript library for building user interfaces. It's maintained by Facebook and a community of individual developers and companies.

## Why React?

React makes it painless to create interactive UIs. Design simple views for each state in your application, and React will efficiently update and render just the right components when your data changes.

## Component-Based

Build encapsulated components that manage their own state, then compose them to make complex UIs.

## Learn Once, Write Anywhere

You can develop new features in React without rewriting existing code. React can also render on the server using Node and power mobile apps using React Native.
    `,
			Excerpt:    "Learn the basics of React and how to create your first component in this comprehensive guide.",
			CoverImage: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?ixlib=rb-1.2.1&auto=format&fit=crop&w=1470&q=80",
			Author:     Author{ID: "1", Name: "Demo User"},
			CreatedAt:  created[0],
			UpdatedAt:  created[0],
		},
		{
			ID:    "2",
			Title: "Understanding JavaScript Promises",
			Content: `
# Understanding JavaScript Promises

JavaScript promises are a powerful way to handle asynchronous operations. They represent a value that might be available now, later, or never.

## Basic Promise Syntax

` + fence + `javascript
const myPromise = new Promise((resolve, reject) => {
  // Asynchronous operation
  if (/* operation successful */) {
    resolve(result);
  } else {
    reject(error);
  }
});

myPromise
  .then(result => {
    // Handle success
  })
  .catch(error => {
    // Handle error
  });
` + fence + `

## Chaining Promises

One of the most powerful features of promises is the ability to chain them.

` + fence + `javascript
fetchData()
  .then(processData)
  .then(saveData)
  .then(notifyUser)
  .catch(handleError);
` + fence + `

## Async/Await

Modern JavaScript provides the async/await syntax to work with promises in a more synchronous way.

` + fence + `javascript
async function fetchAndProcessData() {
  try {
    const data = await fetchData();
    const processed = await processData(data);
    await saveData(processed);
    notifyUser();
  } catch (error) {
    handleError(error);
  }
}
` + fence + `
    `,
			Excerpt:    "Explore JavaScript promises, how they work, and how to use them effectively in your applications.",
			CoverImage: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?ixlib=rb-1.2.1&auto=format&fit=crop&w=1470&q=80",
			Author:     Author{ID: "2", Name: "Jane Smith"},
			CreatedAt:  created[1],
			UpdatedAt:  created[1],
		},
		{
			ID:    "3",
			Title: "CSS Grid Layout: A Complete Guide",
			Content: `
# CSS Grid Layout: A Complete Guide

CSS Grid Layout is a two-dimensional layout system designed for the web. It lets you lay out items in rows and columns.

## Basic Grid Container

` + fence + `css
.container {
  display: grid;
  grid-template-columns: repeat(3, 1fr);
  grid-gap: 20px;
}
` + fence + `

## Placing Items

Grid items can be placed specifically using grid-column and grid-row.

` + fence + `css
.item {
  grid-column: 1 / 3; /* Start at column 1, end before column 3 */
  grid-row: 2 / 4; /* Start at row 2, end before row 4 */
}
` + fence + `

## Grid Areas

You can name grid areas and place items in them.

` + fence + `css
.container {
  display: grid;
  grid-template-areas:
    "header header header"
    "sidebar content content"
    "footer footer footer";
}

.header { grid-area: header; }
.sidebar { grid-area: sidebar; }
.content { grid-area: content; }
.footer { grid-area: footer; }
` + fence + `

## Responsive Grids

Create responsive layouts using media queries and grid-template-columns.

` + fence + `css
.container {
  display: grid;
  grid-template-columns: 1fr;
}

@media (min-width: 768px) {
  .container {
    grid-template-columns: repeat(2, 1fr);
  }
}

@media (min-width: 1024px) {
  .container {
    grid-template-columns: repeat(3, 1fr);
  }
}
` + fence + `
    `,
			Excerpt:    "Master CSS Grid Layout with this comprehensive guide covering everything from basics to advanced techniques.",
			CoverImage: "https://images.unsplash.com/photo-1517134191118-9d595e4c8c2b?ixlib=rb-1.2.1&auto=format&fit=crop&w=1470&q=80",
			Author:     Author{ID: "3", Name: "Alex Johnson"},
			CreatedAt:  created[2],
			UpdatedAt:  created[2],
		},
	}
}
