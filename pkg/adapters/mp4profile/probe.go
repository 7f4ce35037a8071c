// Package mp4profile reads a video's dimensions, frame rate and codec
// straight from its MP4 boxes without decoding any samples.
package mp4profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/trimmonitor/pkg/ports"
)

// Codec represents a video codec type.
type Codec string

const (
	CodecH264    Codec = "h264"
	CodecHEVC    Codec = "hevc"
	CodecAV1     Codec = "av1"
	CodecVP9     Codec = "vp9"
	CodecUnknown Codec = "unknown"
)

var (
	// ErrNoVideoTrack is returned when the file has no video track.
	ErrNoVideoTrack = errors.New("mp4profile: no video track found")
	// ErrNoFrameRate is returned when no sample duration can be found.
	ErrNoFrameRate = errors.New("mp4profile: frame rate not found")
)

// Info is what the first video track reveals about a file.
type Info struct {
	Profile ports.Profile
	Codec   Codec
}

// Prober implements ports.ProfileProber for MP4 files.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe returns the profile of the first video track in the file at path.
func (p *Prober) Probe(ctx context.Context, path string) (ports.Profile, error) {
	if err := ctx.Err(); err != nil {
		return ports.Profile{}, err
	}
	info, err := DetectFromFile(path)
	if err != nil {
		return ports.Profile{}, err
	}
	return info.Profile, nil
}

// DetectFromFile reads the first video track of an MP4 file.
func DetectFromFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return DetectFromReader(f)
}

// DetectFromReader reads the first video track from an io.ReadSeeker.
func DetectFromReader(reader io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}

	return detectFromMP4File(mp4File)
}

func detectFromMP4File(mp4File *mp4.File) (Info, error) {
	moov := mp4File.Moov
	if mp4File.IsFragmented() && mp4File.Init != nil && mp4File.Init.Moov != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return Info{}, ErrNoVideoTrack
	}

	for _, trak := range moov.Traks {
		info, ok := trackInfo(trak)
		if !ok {
			continue
		}

		num, den := frameDuration(mp4File, moov, trak)
		if num == 0 || den == 0 {
			return info, ErrNoFrameRate
		}
		g := gcd(num, den)
		info.Profile.FrameRateNum = int(num / g)
		info.Profile.FrameRateDen = int(den / g)
		return info, nil
	}

	return Info{}, ErrNoVideoTrack
}

func trackInfo(trak *mp4.TrakBox) (Info, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
		return Info{}, false
	}

	// Only process video tracks
	if trak.Mdia.Hdlr.HandlerType != "vide" {
		return Info{}, false
	}

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return Info{}, false
	}

	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		vse, ok := child.(*mp4.VisualSampleEntryBox)
		if !ok {
			continue
		}
		return Info{
			Profile: ports.Profile{Width: int(vse.Width), Height: int(vse.Height)},
			Codec:   codecFromType(child.Type()),
		}, true
	}

	return Info{}, false
}

func codecFromType(boxType string) Codec {
	switch boxType {
	case "avc1", "avc3":
		return CodecH264
	case "hvc1", "hev1":
		return CodecHEVC
	case "av01":
		return CodecAV1
	case "vp09":
		return CodecVP9
	default:
		return CodecUnknown
	}
}

// frameDuration returns the track timescale and the dominant sample duration,
// i.e. the frame rate as a fraction.
func frameDuration(mp4File *mp4.File, moov *mp4.MoovBox, trak *mp4.TrakBox) (uint64, uint64) {
	if trak.Mdia.Mdhd == nil {
		return 0, 0
	}
	timescale := uint64(trak.Mdia.Mdhd.Timescale)

	// Progressive: the longest run in stts.
	if stts := trak.Mdia.Minf.Stbl.Stts; stts != nil {
		var best, bestCount uint32
		for i, delta := range stts.SampleTimeDelta {
			if i < len(stts.SampleCount) && stts.SampleCount[i] > bestCount && delta > 0 {
				best, bestCount = delta, stts.SampleCount[i]
			}
		}
		if best > 0 {
			return timescale, uint64(best)
		}
	}

	// Fragmented: the first sample of the track's first fragment.
	var trex *mp4.TrexBox
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == trak.Tkhd.TrackID {
				trex = t
				break
			}
		}
	}

	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			samples, err := frag.GetFullSamples(trex)
			if err != nil || len(samples) == 0 {
				continue
			}
			if samples[0].Dur > 0 {
				return timescale, uint64(samples[0].Dur)
			}
		}
	}

	if trex != nil && trex.DefaultSampleDuration > 0 {
		return timescale, uint64(trex.DefaultSampleDuration)
	}

	return timescale, 0
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Ensure Prober implements ports.ProfileProber
var _ ports.ProfileProber = (*Prober)(nil)
