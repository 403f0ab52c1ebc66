package extractor

import "testing"

func TestMicrodataExtractor(t *testing.T) {
	body := `<html><body>
<div itemscope itemtype="http://schema.org/Movie" itemid="http://example.org/avatar">
	<h1 itemprop="name">Avatar</h1>
	<div itemprop="director" itemscope itemtype="http://schema.org/Person">
		<span itemprop="name">James Cameron</span>
	</div>
	<p><a itemprop="trailer" href="trailer.html">Trailer</a></p>
	<meta itemprop="duration" content="PT2H42M">
	<time itemprop="datePublished" datetime="2009-12-18">December 2009</time>
</div>
</body></html>`

	checkTriples(t, extract(t, &microdataExtractor{}, "text/html", body), []string{
		`<http://example.org/avatar> ` + rdfType + ` <http://schema.org/Movie> .`,
		`<http://example.org/avatar> <http://schema.org/name> "Avatar" .`,
		`_:microdata_0 ` + rdfType + ` <http://schema.org/Person> .`,
		`_:microdata_0 <http://schema.org/name> "James Cameron" .`,
		`<http://example.org/avatar> <http://schema.org/director> _:microdata_0 .`,
		`<http://example.org/avatar> <http://schema.org/trailer> <http://example.org/trailer.html> .`,
		`<http://example.org/avatar> <http://schema.org/duration> "PT2H42M" .`,
		`<http://example.org/avatar> <http://schema.org/datePublished> "2009-12-18" .`,
	})
}

func TestMicrodataExtractor_UntypedItem(t *testing.T) {
	body := `<div itemscope>
	<span itemprop="name">ignored without vocabulary</span>
	<span itemprop="http://purl.org/dc/terms/title">Kept</span>
</div>`

	checkTriples(t, extract(t, &microdataExtractor{}, "text/html", body), []string{
		`_:microdata_0 <http://purl.org/dc/terms/title> "Kept" .`,
	})
}
