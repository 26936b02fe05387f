// Package dataset loads tabular recipient data from spreadsheet files.
//
// Load dispatches on the file extension: .xlsx/.xlsm workbooks are read with
// excelize (first sheet only), .csv files with encoding/csv. The first row
// supplies the column headers; every following row becomes a Row mapping
// column name to cell value. Rows keep source order, short rows are padded
// with empty values, and values are returned as the display strings the file
// formats them as.
//
// A file with headers but zero data rows fails with ErrEmptyData so the
// caller can reject it before any dispatch is possible.
package dataset
