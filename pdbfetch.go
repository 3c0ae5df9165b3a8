// Package pdbfetch provides a batch downloader for PDB entry records.
// Given a list of accession codes it fetches one JSON document per code
// from the RCSB REST API and persists each response body verbatim as a
// file named after its identifier.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, zerolog/).
package pdbfetch
