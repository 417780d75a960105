// Package tabular reads and writes boarding data as comma-separated text.
//
// Input is one booking per line: "Booking_ID,Seat1,Seat2,...". An optional
// header is recognised on the first non-blank line only, by the substrings
// "booking" or "seat" (any case). Quotes in input are not interpreted.
//
// Output is the export table "Seq","Booking_ID","Max_Seat_Number","Seats"
// with every field wrapped in double quotes and seats joined by ";".
// Embedded quotes are not escaped, so identifiers containing '"' or ','
// do not survive a round trip through ReadSequence.
package tabular
