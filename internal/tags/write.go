package tags

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/Sorrow446/go-mp4tag"
	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"go.senan.xyz/taglib"
)

// ErrUnsupported is returned by Write for files it cannot tag.
var ErrUnsupported = errors.New("unsupported format")

// Write stores t in the file at path. Fields other than those of Tag,
// cover art included, are kept.
func Write(path string, t *Tag) error {
	switch ext(path) {
	case ExtMP3:
		return writeMP3Tags(path, t)
	case ExtFLAC:
		return writeFLACTags(path, t)
	case ExtOGG, ExtOGA, ExtOPUS:
		return writeOggTags(path, t)
	case ExtM4A, ExtMP4:
		return writeM4ATags(path, t)
	}
	return fmt.Errorf("%w: %s", ErrUnsupported, ext(path))
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func writeMP3Tags(path string, t *Tag) error {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2 cannot be edited: drop it and start a v2.4 tag
		if stripErr := stripID3v2Tag(path); stripErr != nil {
			return fmt.Errorf("strip unsupported ID3v2 tag: %w", stripErr)
		}
		id3tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer id3tag.Close()

	id3tag.SetVersion(4)
	id3tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	setText := func(id, value string) {
		id3tag.DeleteFrames(id)
		if value != "" {
			id3tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
		}
	}
	setText(id3tag.CommonID("Title/Songname/Content description"), t.Title)
	setText(id3tag.CommonID("Lead artist/Lead performer/Soloist/Performing group"), t.Artist)
	setText(id3tag.CommonID("Band/Orchestra/Accompaniment"), t.AlbumArtist)
	setText(id3tag.CommonID("Album/Movie/Show title"), t.Album)
	setText(id3tag.CommonID("Composer"), t.Composer)
	setText(id3tag.CommonID("Content type"), t.Genre)
	setText(id3tag.CommonID("Track number/Position in set"), itoa(t.TrackNumber))
	setText(id3tag.CommonID("Part of a set"), itoa(t.DiscNumber))
	setText("TDRC", itoa(t.Year))

	commentID := id3tag.CommonID("Comments")
	id3tag.DeleteFrames(commentID)
	if t.Comment != "" {
		id3tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding: id3v2.EncodingUTF8,
			Language: "eng",
			Text:     t.Comment,
		})
	}

	if err := id3tag.Save(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// stripID3v2Tag rewrites the file without its leading ID3v2 tag.
func stripID3v2Tag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if len(data) < 10 || string(data[:3]) != id3Magic {
		return nil
	}

	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	tagSize := size + 10
	if data[5]&0x10 != 0 {
		tagSize += 10 // footer
	}
	if tagSize >= len(data) {
		return fmt.Errorf("ID3v2 tag size (%d) exceeds file size (%d)", tagSize, len(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	return os.WriteFile(path, data[tagSize:], info.Mode())
}

// vorbisFields maps Vorbis comment keys to the values of t.
func vorbisFields(t *Tag) map[string]string {
	return map[string]string{
		taglib.Title:       t.Title,
		taglib.Artist:      t.Artist,
		taglib.AlbumArtist: t.AlbumArtist,
		taglib.Album:       t.Album,
		keyComposer:        t.Composer,
		taglib.Genre:       t.Genre,
		keyComment:         t.Comment,
		taglib.TrackNumber: itoa(t.TrackNumber),
		taglib.DiscNumber:  itoa(t.DiscNumber),
		taglib.Date:        itoa(t.Year),
	}
}

// writeFLACTags replaces the fields of t in the VORBIS_COMMENT block and
// keeps every other comment.
func writeFLACTags(path string, t *Tag) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse file: %w", err)
	}

	cmtIdx := -1
	cmts := flacvorbis.New()
	for i, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		existing, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return fmt.Errorf("parse comments: %w", err)
		}
		cmts = existing
		cmtIdx = i
		break
	}

	fields := vorbisFields(t)
	kept := cmts.Comments[:0]
	for _, c := range cmts.Comments {
		key, _, _ := strings.Cut(c, "=")
		if _, replaced := fields[strings.ToUpper(key)]; !replaced {
			kept = append(kept, c)
		}
	}
	cmts.Comments = kept

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		value := fields[key]
		if value == "" {
			continue
		}
		if err := cmts.Add(key, value); err != nil {
			return fmt.Errorf("add %s: %w", strings.ToLower(key), err)
		}
	}

	block := cmts.Marshal()
	if cmtIdx >= 0 {
		f.Meta[cmtIdx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return nil
}

// writeOggTags writes Vorbis comments to Ogg Vorbis and Opus files.
// Empty fields are removed; other comments are kept.
func writeOggTags(path string, t *Tag) error {
	tags := make(map[string][]string)
	for key, value := range vorbisFields(t) {
		if value == "" {
			tags[key] = nil
			continue
		}
		tags[key] = []string{value}
	}

	if err := taglib.WriteTags(path, tags, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}

// writeM4ATags writes the iTunes atoms. go-mp4tag leaves empty fields
// untouched, so clearing a field keeps its old value.
func writeM4ATags(path string, t *Tag) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	tags := &mp4tag.MP4Tags{
		Title:       t.Title,
		Artist:      t.Artist,
		AlbumArtist: t.AlbumArtist,
		Album:       t.Album,
		Composer:    t.Composer,
		Comment:     t.Comment,
		CustomGenre: t.Genre,
		TrackNumber: safeInt16(t.TrackNumber),
		DiscNumber:  safeInt16(t.DiscNumber),
		Date:        itoa(t.Year),
	}
	if err := mp4.Write(tags, nil); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func safeInt16(n int) int16 {
	return int16(min(max(n, 0), 32767))
}
