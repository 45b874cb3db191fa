// Package calendar builds the historical replay calendar.
//
// The calendar is a plain weekday calendar: Saturdays and Sundays are skipped,
// no holiday sets are applied. It is computed once per run and shared read-only
// by every unit of work.
package calendar
