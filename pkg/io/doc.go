// Package io reads the upstream state dataset and writes derived entries.
//
// # Input Format
//
// The dataset is the payload served by the dashboard's data endpoint:
//
//	{
//	  "states": [
//	    {"state": "Texas", "abreviation": "TX", "count": 4000,
//	     "male_count": 3500, "population": 29000000}
//	  ]
//	}
//
// The "abreviation" spelling is part of the upstream format. Population may
// be a number or a numeric string ("29,000,000"). Unknown fields are ignored.
// Every record needs a non-empty state name; an empty "states" array is a
// valid, empty dataset.
//
// # Entries Format
//
// [WriteEntriesJSON] writes the derived, rate-sorted rows the chart plots,
// one object per state:
//
//	{"abbrev": "VT", "name": "Vermont", "total": 100, "male": 11.29,
//	 "female": 4.84, "per100k": 16.13, "population": 620000,
//	 "ease_of_drawing": 2.6, "gender_ratio": 0.7}
package io
