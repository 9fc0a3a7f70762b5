// Package services implements the query grounding and response
// assembly pipeline: classification, static knowledge selection,
// web search aggregation, retrieval fusion, error diagnosis and
// response validation.
package services
