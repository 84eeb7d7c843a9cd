// Package pagequery provides a small toolkit for fetching an HTML page and
// querying it: find elements by tag and class, extract text, and harvest
// email addresses from the visible text of the page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package pagequery
