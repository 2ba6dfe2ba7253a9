package importer

import (
	"fmt"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/excel2xml"
)

const (
	videoID   = "video_1"
	videoFile = "videos/my_video.mp4"
)

// addVideo appends a :VideoObject and a segment covering its first five
// seconds. Audio segments would be built the same way with
// MakeAudioSegment.
func (b *builder) addVideo() error {
	horohoroto, err := b.objectID(LinkTarget)
	if err != nil {
		return fmt.Errorf("video segment: %w", err)
	}

	video, err := excel2xml.MakeResource("Publicly available video", ":VideoObject", videoID)
	if err != nil {
		return err
	}
	p := &props{parent: video}
	// not checked: the video is not part of the local inputs
	p.add(excel2xml.MakeBitstreamProp(videoFile, ""))
	if p.err != nil {
		return fmt.Errorf("video: %w", p.err)
	}
	b.root.AddChild(video)

	segment, err := excel2xml.MakeVideoSegment("The first 5 seconds of my video", "segment_1")
	if err != nil {
		return err
	}
	p = &props{parent: segment}
	p.add(excel2xml.MakeIsSegmentOfProp(excel2xml.Value(videoID)))
	p.add(excel2xml.MakeHasSegmentBoundsProp(0, 5, ""))
	p.add(excel2xml.MakeHasTitleProp(excel2xml.Value("Intro of my video")))
	p.add(excel2xml.MakeHasCommentProp(excel2xml.Value("Video segments can also have comments")))
	p.add(excel2xml.MakeHasDescriptionProp(excel2xml.Value("This segments spans the first 5 seconds of my video")))
	p.add(excel2xml.MakeHasKeywordProp(excel2xml.Value("publicly available video")))
	p.add(excel2xml.MakeRelatesToProp(excel2xml.Value(horohoroto)))
	if p.err != nil {
		return fmt.Errorf("video segment: %w", p.err)
	}
	b.root.AddChild(segment)

	return nil
}
