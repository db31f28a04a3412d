package press

import "time"

// Article is a single classified feed entry. Summary is plain text with
// markup already stripped. Articles are immutable once created and live
// only for the duration of one digest.
type Article struct {
	Source  string
	Title   string
	Summary string
	Link    string
}

// Digest holds one build's articles bucketed by subject. Every subject is
// present in Buckets, empty ones included. A digest is rebuilt whole on
// every fetch cycle; nothing updates it incrementally.
type Digest struct {
	Buckets     map[Subject][]Article
	GeneratedAt time.Time
}

// NewDigest returns a digest with an empty bucket for every subject.
func NewDigest(generatedAt time.Time) *Digest {
	buckets := make(map[Subject][]Article, len(Subjects))
	for _, subject := range Subjects {
		buckets[subject] = []Article{}
	}
	return &Digest{Buckets: buckets, GeneratedAt: generatedAt}
}

// Append adds an article to the end of its subject's bucket.
func (d *Digest) Append(subject Subject, a Article) {
	d.Buckets[subject] = append(d.Buckets[subject], a)
}

// Truncate caps every bucket at max articles, keeping the earliest
// appended and discarding the rest. Non-positive max is a no-op.
func (d *Digest) Truncate(max int) {
	if max <= 0 {
		return
	}
	for subject, articles := range d.Buckets {
		if len(articles) > max {
			d.Buckets[subject] = articles[:max]
		}
	}
}

// Articles returns the bucket for a subject in appended order.
func (d *Digest) Articles(subject Subject) []Article {
	return d.Buckets[subject]
}

// ActiveSubjects returns the subjects with at least one article, in
// subject order.
func (d *Digest) ActiveSubjects() []Subject {
	active := make([]Subject, 0, len(Subjects))
	for _, subject := range Subjects {
		if len(d.Buckets[subject]) > 0 {
			active = append(active, subject)
		}
	}
	return active
}

// Total counts articles across all buckets.
func (d *Digest) Total() int {
	total := 0
	for _, articles := range d.Buckets {
		total += len(articles)
	}
	return total
}

// IsEmpty reports whether no bucket holds any article.
func (d *Digest) IsEmpty() bool {
	return d.Total() == 0
}
