package main

import "github.com/iw2rmb/revealgrid/record"

func sampleRecords() []record.Record {
	return []record.Record{
		record.New(record.F("name", "Jimmy"), record.F("city", "Stavanger"), record.F("age", 25)),
		record.New(record.F("name", "Sara"), record.F("city", "Oslo"), record.F("age", 23)),
		record.New(record.F("name", "Jon"), record.F("city", "Bergen")),
	}
}
