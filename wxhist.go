// Package wxhist downloads daily historical weather observation tables for
// an airport and turns each day into a delimited text record.
//
// The source pages do not keep a stable column order across days, stations
// or unit systems, so every page's header row is reconciled against a fixed
// set of semantic fields before its rows are extracted and normalised.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package wxhist
