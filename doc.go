// Package mkvmeta reads the structural metadata of Matroska and WebM files.
//
// mkvmeta decodes the EBML header, the segment information and the track
// list of a file without reading media payload. Clusters, Cues, attachments
// and other large elements are skipped by seeking, so opening a
// multi-gigabyte file costs a few kilobytes of reads.
//
// # Quick Start
//
//	file, err := mkvmeta.Open("movie.mkv")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(file.Format, file.Header().DocType())
//	for _, t := range file.Tracks() {
//		fmt.Printf("#%d %s %s\n", t.Number().Value(), t.Type(), t.CodecID().Value())
//	}
//
// # Present and Absent Fields
//
// Every decoded element is returned as a [Field]. Get reports what the file
// physically contains; Value falls back to the default the Matroska
// specification implies for an absent element:
//
//	scale := file.Info().TimestampScale()
//	scale.Value()   // 1000000 when the element is absent
//	scale.Get()     // (0, false) when the element is absent
//
// Fields without an implied default, such as the EBML version, report
// absence through Get and a zero Value.
//
// # Streaming Files
//
// Segments and Clusters written by live muxers often carry the EBML
// unknown-size marker. Such an element ends at the first element that
// cannot be its child, or at the end of the file.
//
// # Errors
//
// Every decode failure matches one of the Err* values with errors.Is and,
// for structural problems, unwraps to a *CorruptedFileError that carries the
// byte offset:
//
//	_, err := mkvmeta.Open("broken.mkv")
//	var cfe *mkvmeta.CorruptedFileError
//	if errors.As(err, &cfe) {
//		fmt.Printf("%s at offset %d\n", cfe.Element, cfe.Offset)
//	}
//
// # Concurrency
//
// A single file is decoded sequentially. The records returned by Open are
// immutable and safe to share between goroutines. Use OpenMany to decode
// several files in parallel.
package mkvmeta
