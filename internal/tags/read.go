package tags

import (
	"os"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// Read reads the tags of the file at path. dhowden/tag handles most
// files; MP3s it rejects go through id3v2, other formats through TagLib.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch ext(path) {
		case ExtMP3:
			return readWithID3v2(path)
		case ExtFLAC, ExtOGG, ExtOGA, ExtOPUS, ExtM4A, ExtMP4:
			return readWithTaglib(path)
		}
		return nil, err
	}

	t := &Tag{
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Composer:    m.Composer(),
		Genre:       m.Genre(),
		Comment:     m.Comment(),
		Year:        m.Year(),
	}
	t.TrackNumber, _ = m.Track()
	t.DiscNumber, _ = m.Disc()
	return t, nil
}

func readWithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	t := &Tag{
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: id3TextFrame(id3tag, "TPE2"),
		Album:       id3tag.Album(),
		Composer:    id3TextFrame(id3tag, "TCOM"),
		Genre:       id3tag.Genre(),
		TrackNumber: parseNumber(id3TextFrame(id3tag, "TRCK")),
		DiscNumber:  parseNumber(id3TextFrame(id3tag, "TPOS")),
		Year:        parseYear(id3tag.Year()),
	}
	for _, frame := range id3tag.GetFrames(id3tag.CommonID("Comments")) {
		if c, ok := frame.(id3v2.CommentFrame); ok {
			t.Comment = c.Text
			break
		}
	}
	return t, nil
}

func id3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

func readWithTaglib(path string) (*Tag, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(raw)

	return &Tag{
		Title:       tags.get(taglib.Title),
		Artist:      tags.get(taglib.Artist),
		AlbumArtist: tags.get(taglib.AlbumArtist),
		Album:       tags.get(taglib.Album),
		Composer:    tags.get(keyComposer),
		Genre:       tags.get(taglib.Genre),
		Comment:     tags.get(keyComment, "DESCRIPTION"),
		TrackNumber: tags.number(taglib.TrackNumber),
		DiscNumber:  tags.number(taglib.DiscNumber),
		Year:        parseYear(tags.get(taglib.Date)),
	}, nil
}
