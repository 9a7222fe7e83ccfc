package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/mkvmeta"
)

// Optional values are pointers so that absent elements are left out of the
// output rather than printed as their defaults.
type fileView struct {
	Path   string      `yaml:"path"`
	Format string      `yaml:"format"`
	Size   int64       `yaml:"size"`
	Header headerView  `yaml:"header"`
	Info   infoView    `yaml:"info"`
	Tracks []trackView `yaml:"tracks"`
}

type headerView struct {
	DocType            string  `yaml:"doc_type"`
	Version            *uint64 `yaml:"version,omitempty"`
	ReadVersion        *uint64 `yaml:"read_version,omitempty"`
	DocTypeVersion     uint64  `yaml:"doc_type_version"`
	DocTypeReadVersion uint64  `yaml:"doc_type_read_version"`
}

type infoView struct {
	Title          *string  `yaml:"title,omitempty"`
	TimestampScale uint64   `yaml:"timestamp_scale"`
	Duration       *float64 `yaml:"duration,omitempty"`
	Length         *string  `yaml:"length,omitempty"`
	Date           *string  `yaml:"date,omitempty"`
	MuxingApp      string   `yaml:"muxing_app"`
	WritingApp     string   `yaml:"writing_app"`
	SegmentUID     *string  `yaml:"segment_uid,omitempty"`
}

type trackView struct {
	Number          uint64         `yaml:"number"`
	UID             *uint64        `yaml:"uid,omitempty"`
	Type            string         `yaml:"type"`
	TypeCode        *uint64        `yaml:"type_code,omitempty"`
	Name            *string        `yaml:"name,omitempty"`
	Language        string         `yaml:"language"`
	CodecID         string         `yaml:"codec_id"`
	CodecName       *string        `yaml:"codec_name,omitempty"`
	CodecPrivate    *int           `yaml:"codec_private_bytes,omitempty"`
	Enabled         bool           `yaml:"enabled"`
	Default         bool           `yaml:"default"`
	Forced          bool           `yaml:"forced"`
	DefaultDuration *uint64        `yaml:"default_duration,omitempty"`
	Video           *videoView     `yaml:"video,omitempty"`
	Audio           *audioView     `yaml:"audio,omitempty"`
	Encodings       []encodingView `yaml:"content_encodings,omitempty"`
}

type videoView struct {
	PixelWidth    uint64 `yaml:"pixel_width"`
	PixelHeight   uint64 `yaml:"pixel_height"`
	DisplayWidth  uint64 `yaml:"display_width"`
	DisplayHeight uint64 `yaml:"display_height"`
	Interlaced    uint64 `yaml:"interlaced"`
}

type audioView struct {
	SamplingFrequency float64 `yaml:"sampling_frequency"`
	Channels          uint64  `yaml:"channels"`
	BitDepth          *uint64 `yaml:"bit_depth,omitempty"`
}

type encodingView struct {
	Order       uint64  `yaml:"order"`
	Scope       uint64  `yaml:"scope"`
	Type        string  `yaml:"type"`
	Compression *uint64 `yaml:"compression_algo,omitempty"`
	Encryption  *uint64 `yaml:"encryption_algo,omitempty"`
}

// present returns a pointer to the value of a field that was in the file.
func present[T any](f mkvmeta.Field[T]) *T {
	if v, ok := f.Get(); ok {
		return pointer.To(v)
	}
	return nil
}

func newFileView(f *mkvmeta.File) fileView {
	h, info := f.Header(), f.Info()

	v := fileView{
		Path:   f.Path,
		Format: f.Format.String(),
		Size:   f.Size,
		Header: headerView{
			DocType:            h.DocType(),
			Version:            present(h.Version()),
			ReadVersion:        present(h.ReadVersion()),
			DocTypeVersion:     h.DocTypeVersion().Value(),
			DocTypeReadVersion: h.DocTypeReadVersion().Value(),
		},
		Info: infoView{
			Title:          present(info.Title()),
			TimestampScale: info.TimestampScale().Value(),
			Duration:       present(info.Duration()),
			MuxingApp:      info.MuxingApp().Value(),
			WritingApp:     info.WritingApp().Value(),
		},
	}

	if d, ok := info.Duration().Get(); ok {
		v.Info.Length = pointer.ToString(time.Duration(d * float64(info.TimestampScale().Value())).String())
	}
	if date, ok := info.Date(); ok {
		v.Info.Date = pointer.ToString(date.Format(time.RFC3339Nano))
	}
	if uid := info.SegmentUID(); uid != nil {
		v.Info.SegmentUID = pointer.ToString(hex.EncodeToString(uid))
	}

	for _, t := range f.Tracks() {
		v.Tracks = append(v.Tracks, newTrackView(t))
	}
	return v
}

func newTrackView(t mkvmeta.TrackEntry) trackView {
	v := trackView{
		Number:          t.Number().Value(),
		UID:             present(t.UID()),
		Type:            t.Type().String(),
		TypeCode:        present(t.TypeCode()),
		Name:            present(t.Name()),
		Language:        t.Language().Value(),
		CodecID:         t.CodecID().Value(),
		CodecName:       present(t.CodecName()),
		Enabled:         t.FlagEnabled().Value(),
		Default:         t.FlagDefault().Value(),
		Forced:          t.FlagForced().Value(),
		DefaultDuration: present(t.DefaultDuration()),
	}
	if p := t.CodecPrivate(); p != nil {
		v.CodecPrivate = pointer.ToInt(len(p))
	}

	if vid := t.Video(); vid != nil {
		v.Video = &videoView{
			PixelWidth:    vid.PixelWidth().Value(),
			PixelHeight:   vid.PixelHeight().Value(),
			DisplayWidth:  vid.DisplayWidth().Value(),
			DisplayHeight: vid.DisplayHeight().Value(),
			Interlaced:    vid.FlagInterlaced().Value(),
		}
	}
	if a := t.Audio(); a != nil {
		v.Audio = &audioView{
			SamplingFrequency: a.SamplingFrequency().Value(),
			Channels:          a.Channels().Value(),
			BitDepth:          present(a.BitDepth()),
		}
	}

	for _, e := range t.ContentEncodings() {
		ev := encodingView{
			Order: e.Order().Value(),
			Scope: e.Scope().Value(),
			Type:  e.Type().String(),
		}
		if c := e.Compression(); c != nil {
			ev.Compression = pointer.ToUint64(c.Algo().Value())
		}
		if enc := e.Encryption(); enc != nil {
			ev.Encryption = pointer.ToUint64(enc.Algo().Value())
		}
		v.Encodings = append(v.Encodings, ev)
	}
	return v
}

func render(w io.Writer, v fileView, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	case "pretty":
		_, err := pretty.Fprintf(w, "%# v\n", v)
		return err
	case "text":
		return renderText(w, v)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, v fileView) error {
	fmt.Fprintf(w, "%s: %s, %d bytes\n", v.Path, v.Format, v.Size)
	if v.Info.Length != nil {
		fmt.Fprintf(w, "  duration %s\n", *v.Info.Length)
	}
	for _, t := range v.Tracks {
		fmt.Fprintf(w, "  #%d %s %s [%s]", t.Number, t.Type, t.CodecID, t.Language)
		switch {
		case t.Video != nil:
			fmt.Fprintf(w, " %dx%d", t.Video.PixelWidth, t.Video.PixelHeight)
		case t.Audio != nil:
			fmt.Fprintf(w, " %.0f Hz %dch", t.Audio.SamplingFrequency, t.Audio.Channels)
		}
		_, err := fmt.Fprintln(w)
		if err != nil {
			return err
		}
	}
	return nil
}
