// Package domain models scheduled flight traffic for a single airport day.
//
// # Data Source
//
// Flight records come from the aviationstack REST API
// (https://aviationstack.com/documentation), endpoint /v1/flights, queried by
// airport IATA code and flight date. Records are scheduled data, not
// real-time positions: each record carries departure and arrival blocks with
// ISO-8601 "scheduled" timestamps, either of which may be absent.
//
// # Scheduled Time Resolution
//
// A record's single resolved timestamp prefers departure.scheduled and falls
// back to arrival.scheduled. Records with neither are dropped. See
// [ExtractScheduledTimes].
//
// # Airport Codes
//
//	IATA: three letters (LAX, TPA).
//	ICAO: four letters; US codes prefix the IATA code with "K" (KLAX → LAX).
//	[NormalizeAirportCode] uppercases input and strips the "K" prefix from
//	four-letter codes so users can type either form.
//
// # PPH
//
// Projected flights per hour: the count of resolved scheduled timestamps
// falling inside each hour of the day in the reporting timezone. Raw counts,
// not a rolling rate. The histogram is dense: all 24 hours are present,
// zero-seeded, so chart axes stay stable across airports and days.
package domain
