package ebml

import (
	"reflect"
	"testing"
)

func TestSchema_ContextScopedLookup(t *testing.T) {
	// 0x88 is FlagDefault only inside a TrackEntry.
	d, ok := Matroska.Lookup(ContextTrackEntry, IDFlagDefault)
	if !ok || d.Name != "FlagDefault" {
		t.Fatalf("expected FlagDefault in TrackEntry, got %+v", d)
	}
	if _, ok := Matroska.Lookup(ContextContentEncoding, IDFlagDefault); ok {
		t.Error("FlagDefault must not resolve inside ContentEncoding")
	}
	if _, ok := Matroska.Lookup(ContextInfo, IDTrackEntry); ok {
		t.Error("TrackEntry must not resolve inside Info")
	}
}

func TestSchema_Globals(t *testing.T) {
	for _, ctx := range []Context{ContextEBML, ContextSegment, ContextTrackEntry, ContextCluster} {
		d, ok := Matroska.Lookup(ctx, IDVoid)
		if !ok || !d.Skip {
			t.Errorf("Void should be a skipped global in %s", ctx)
		}
		if _, ok := Matroska.Lookup(ctx, IDCRC32); !ok {
			t.Errorf("CRC-32 should resolve in %s", ctx)
		}
	}
	if _, ok := Matroska.Lookup(ContextRoot, IDVoid); ok {
		t.Error("Void should not resolve at the root")
	}
}

func TestSchema_Defaults(t *testing.T) {
	tests := []struct {
		ctx  Context
		id   ID
		want Value
	}{
		{ContextEBML, IDDocType, StringValue(KindString, "matroska")},
		{ContextInfo, IDTimestampScale, UintValue(1000000)},
		{ContextAudio, IDSamplingFrequency, FloatValue(8000)},
		{ContextAudio, IDChannels, UintValue(1)},
		{ContextTrackEntry, IDLanguage, StringValue(KindString, "eng")},
		{ContextContentEncoding, IDContentEncodingScope, UintValue(1)},
	}

	for _, tt := range tests {
		d, ok := Matroska.Lookup(tt.ctx, tt.id)
		if !ok {
			t.Fatalf("%s not found in %s", tt.id, tt.ctx)
		}
		if !d.HasDefault || !reflect.DeepEqual(d.Default, tt.want) {
			t.Errorf("%s: expected default %+v, got %+v (has=%v)", d.Name, tt.want, d.Default, d.HasDefault)
		}
	}

	for _, id := range []ID{IDEBMLVersion, IDEBMLReadVersion} {
		d, _ := Matroska.Lookup(ContextEBML, id)
		if d.HasDefault {
			t.Errorf("%s should not carry a default", d.Name)
		}
	}
}

func TestSchema_Unsized(t *testing.T) {
	seg, _ := Matroska.Lookup(ContextRoot, IDSegment)
	cluster, _ := Matroska.Lookup(ContextSegment, IDCluster)
	info, _ := Matroska.Lookup(ContextSegment, IDInfo)

	if !seg.Unsized || !cluster.Unsized {
		t.Error("Segment and Cluster must allow unknown size")
	}
	if info.Unsized {
		t.Error("Info must not allow unknown size")
	}
}

func TestSchema_ResolvesAbove(t *testing.T) {
	tests := []struct {
		ctx  Context
		id   ID
		want bool
	}{
		{ContextCluster, IDCluster, true},
		{ContextCluster, IDCues, true},
		{ContextCluster, IDSegment, true},
		{ContextCluster, IDEBML, true},
		{ContextCluster, IDSimpleBlock, false},
		{ContextCluster, IDVoid, false},
		{ContextCluster, 0x4F, false},
		{ContextSegment, IDSegment, true},
		{ContextSegment, IDInfo, false},
		{ContextTrackEntry, IDTracks, true},
		{ContextRoot, IDSegment, false},
	}

	for _, tt := range tests {
		if got := Matroska.ResolvesAbove(tt.ctx, tt.id); got != tt.want {
			t.Errorf("ResolvesAbove(%s, %s) = %v, want %v", tt.ctx, tt.id, got, tt.want)
		}
	}
}

func TestSchema_Parents(t *testing.T) {
	chain := []Context{ContextContentEncoding, ContextContentEncodings, ContextTrackEntry, ContextTracks, ContextSegment, ContextRoot}
	for i := 0; i < len(chain)-1; i++ {
		p, ok := Matroska.Parent(chain[i])
		if !ok || p != chain[i+1] {
			t.Errorf("Parent(%s) = %s, want %s", chain[i], p, chain[i+1])
		}
	}
	if _, ok := Matroska.Parent(ContextRoot); ok {
		t.Error("root has no parent")
	}
}
