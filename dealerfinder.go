// Package dealerfinder provides a small web application that finds
// independent used car dealers near a US zip code. It geocodes the zip,
// queries the Google Places API for nearby used-car businesses, filters out
// franchise chains, and enriches each listing with a short AI-generated
// summary of the dealer's website.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., googlemaps/, gemini/, trafilatura/).
package dealerfinder
