package tags

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/llehouerou/go-m4a"
	"github.com/llehouerou/go-mp3"
)

// ReadAudioInfo reads the audio stream properties of the file at path
// without decoding it where the container carries them.
func ReadAudioInfo(path string) (*AudioInfo, error) {
	e := ext(path)
	switch e {
	case ExtMP3, ExtFLAC, ExtOGG, ExtOGA, ExtOPUS, ExtM4A, ExtMP4, ExtWAV:
	default:
		return nil, fmt.Errorf("unsupported format: %s", e)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	var info *AudioInfo
	switch e {
	case ExtMP3:
		info, err = readMP3AudioInfo(f)
	case ExtFLAC:
		info, err = readFLACStreamInfo(path)
	case ExtOGG, ExtOGA, ExtOPUS:
		info, err = readOggAudioInfo(f, fi.Size())
	case ExtM4A, ExtMP4:
		info, err = readM4AAudioInfo(f)
	case ExtWAV:
		return readWAVAudioInfo(f)
	}
	if err != nil {
		return nil, err
	}
	info.Bitrate = averageBitrate(fi.Size(), info.Duration)
	return info, nil
}

func readMP3AudioInfo(f *os.File) (*AudioInfo, error) {
	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, errors.New("mp3: invalid sample rate")
	}
	sampleCount := max(decoder.SampleCount(), 0)

	return &AudioInfo{
		Duration:   time.Duration(float64(sampleCount) / float64(sampleRate) * float64(time.Second)),
		Format:     "MP3",
		SampleRate: sampleRate,
		BitDepth:   16,
	}, nil
}

// readFLACStreamInfo reads the STREAMINFO block, falling back to the
// decoder for files go-flac rejects (ID3v2 prefixed ones).
func readFLACStreamInfo(path string) (*AudioInfo, error) {
	file, err := goflac.ParseFile(path)
	if err != nil {
		return readFLACWithBeep(path)
	}

	si, err := file.GetStreamInfo()
	if err != nil {
		return readFLACWithBeep(path)
	}

	var duration time.Duration
	if si.SampleRate > 0 {
		duration = time.Duration(float64(si.SampleCount) / float64(si.SampleRate) * float64(time.Second))
	}
	return &AudioInfo{
		Duration:   duration,
		Format:     "FLAC",
		SampleRate: si.SampleRate,
		BitDepth:   si.BitDepth,
		Channels:   si.ChannelCount,
	}, nil
}

func readFLACWithBeep(path string) (*AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := skipID3v2(f); err != nil {
		return nil, err
	}

	streamer, format, err := flac.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	return &AudioInfo{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "FLAC",
		SampleRate: int(format.SampleRate),
		BitDepth:   format.Precision * 8,
		Channels:   format.NumChannels,
	}, nil
}

func readWAVAudioInfo(f *os.File) (*AudioInfo, error) {
	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, err
	}

	sampleRate := int(format.SampleRate)
	return &AudioInfo{
		Duration:   format.SampleRate.D(streamer.Len()),
		Format:     "WAV",
		SampleRate: sampleRate,
		BitDepth:   format.Precision * 8,
		Channels:   format.NumChannels,
		Bitrate:    sampleRate * format.Precision * 8 * format.NumChannels / 1000,
	}, nil
}

var errUnknownOggCodec = errors.New("ogg: unknown codec")

// opusRate is the granule rate of every Opus stream.
const opusRate = 48000

// readOggAudioInfo identifies the codec from the first packet and takes
// the duration from the granule position of the last page.
func readOggAudioInfo(f *os.File, size int64) (*AudioInfo, error) {
	packet, err := firstOggPacket(f)
	if err != nil {
		return nil, err
	}

	var (
		info    AudioInfo
		preSkip int64
		rate    int
	)
	switch {
	case len(packet) >= 19 && string(packet[:8]) == "OpusHead":
		info.Format = "OPUS"
		info.Channels = int(packet[9])
		preSkip = int64(binary.LittleEndian.Uint16(packet[10:12]))
		info.SampleRate = opusRate
		rate = opusRate
	case len(packet) >= 16 && packet[0] == 0x01 && string(packet[1:7]) == "vorbis":
		info.Format = "VORBIS"
		info.Channels = int(packet[11])
		info.SampleRate = int(binary.LittleEndian.Uint32(packet[12:16]))
		rate = info.SampleRate
	default:
		return nil, errUnknownOggCodec
	}
	info.BitDepth = 16

	granule, err := lastGranule(f, size)
	if err != nil {
		return nil, err
	}
	if rate > 0 && granule > preSkip {
		info.Duration = time.Duration(float64(granule-preSkip) / float64(rate) * float64(time.Second))
	}
	return &info, nil
}

// firstOggPacket returns the payload of the first page, which holds the
// codec identification header.
func firstOggPacket(r io.ReadSeeker) ([]byte, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	header := make([]byte, 27)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if string(header[:4]) != "OggS" {
		return nil, errors.New("ogg: missing page header")
	}
	segments := make([]byte, header[26])
	if _, err := io.ReadFull(r, segments); err != nil {
		return nil, err
	}
	n := 0
	for _, s := range segments {
		n += int(s)
		if s < 255 {
			break
		}
	}
	packet := make([]byte, n)
	if _, err := io.ReadFull(r, packet); err != nil {
		return nil, err
	}
	return packet, nil
}

// lastGranule scans the tail of the file backwards for the last page.
func lastGranule(r io.ReadSeeker, size int64) (int64, error) {
	searchSize := min(int64(65536), size)
	if _, err := r.Seek(-searchSize, io.SeekEnd); err != nil {
		return 0, err
	}
	buf := make([]byte, searchSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, err
	}
	buf = buf[:n]

	for i := len(buf) - 27; i >= 0; i-- {
		if string(buf[i:i+4]) == "OggS" {
			return int64(binary.LittleEndian.Uint64(buf[i+6 : i+14])), nil
		}
	}
	return 0, errors.New("could not determine ogg duration")
}

func readM4AAudioInfo(f *os.File) (*AudioInfo, error) {
	container, err := m4a.Open(f)
	if err != nil {
		return nil, err
	}

	codec := container.Codec()
	format := "M4A"
	switch codec {
	case m4a.CodecAAC:
		format = "AAC"
	case m4a.CodecALAC:
		format = "ALAC"
	case m4a.CodecUnknown:
	}

	bitDepth := 16
	if codec == m4a.CodecALAC && container.SampleSize() == 24 {
		bitDepth = 24
	}

	return &AudioInfo{
		Duration:   container.Duration(),
		Format:     format,
		SampleRate: int(container.SampleRate()),
		BitDepth:   bitDepth,
	}, nil
}

// skipID3v2 positions r after an ID3v2 tag, or at the start without one.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	// syncsafe size in bytes 6-9
	size := int64(header[6]&0x7f)<<21 | int64(header[7]&0x7f)<<14 |
		int64(header[8]&0x7f)<<7 | int64(header[9]&0x7f)
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
