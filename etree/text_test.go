package etree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hourei "github.com/ToAmano/hourei-api"
	houreietree "github.com/ToAmano/hourei-api/etree"
)

// Compile-time verification that TextConverter implements hourei.Converter.
var _ hourei.Converter = (*houreietree.TextConverter)(nil)

func TestTextConverter_Convert_ChapterStatute(t *testing.T) {
	t.Parallel()

	conv := houreietree.NewTextConverter()

	got, err := conv.Convert(chapterLawXML)
	require.NoError(t, err)

	want := strings.Join([]string{
		"目次",
		"第一章　総則（第一条・第二条）",
		"第二章　申請に対する処分（第五条）",
		"附則",
		"第一章　総則",
		"",
		"（目的等）",
		"第一条",
		"この法律は、処分に関する手続に関し、共通する事項を定める。",
		"２",
		"処分については、他の法律に特別の定めがある場合を除く。",
		"（定義）",
		"第二条",
		"この法律において、次の各号に掲げる用語の意義は、当該各号に定めるところによる。",
		"一",
		"法令　法律、法律に基づく命令をいう。",
		"イ",
		"処分に関するもの",
		"（１）",
		"不利益処分に関するもの",
		"二",
		"処分　行政庁の勧告（かんこく）以外の処分をいう。",
		"第二章　申請に対する処分",
		"",
		"第一節　通則",
		"",
		"（審査基準）",
		"第五条",
		"行政庁は、審査基準を定めるものとする。",
		"|区分 | 標準処理期間|",
		"|申請 | 三十日|",
		"（施行期日）",
		"１　この法律は、公布の日から施行する。",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestTextConverter_Convert_ArticleStatute(t *testing.T) {
	t.Parallel()

	conv := houreietree.NewTextConverter()

	got, err := conv.Convert(articleLawXML)
	require.NoError(t, err)

	want := strings.Join([]string{
		"（定義）",
		"第一条",
		"この政令において使用する用語は、法において使用する用語の例による。",
		"一",
		"様式",
		"別記様式第一号による。",
		"１　この政令は、平成六年十月一日から施行する。",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestTextConverter_Convert_Errors(t *testing.T) {
	t.Parallel()

	conv := houreietree.NewTextConverter()

	t.Run("malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("<unclosed")
		require.Error(t, err)
		assert.Equal(t, hourei.EINVALID, hourei.ErrorCode(err))
	})

	t.Run("missing law_full_text", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("<law_data_response></law_data_response>")
		require.Error(t, err)
		assert.Equal(t, hourei.EINVALID, hourei.ErrorCode(err))
	})

	t.Run("missing MainProvision", func(t *testing.T) {
		t.Parallel()

		const xml = `<law_data_response><law_full_text><Law><LawBody>
			<LawTitle>題名</LawTitle>
		</LawBody></Law></law_full_text></law_data_response>`

		_, err := conv.Convert(xml)
		require.Error(t, err)
		assert.Equal(t, hourei.EINVALID, hourei.ErrorCode(err))
	})

	t.Run("neither Chapter nor Article in MainProvision", func(t *testing.T) {
		t.Parallel()

		const xml = `<law_data_response><law_full_text><Law><LawBody>
			<MainProvision><Preamble/></MainProvision>
		</LawBody></Law></law_full_text></law_data_response>`

		_, err := conv.Convert(xml)
		require.Error(t, err)
		assert.Equal(t, hourei.EINVALID, hourei.ErrorCode(err))
		assert.Contains(t, hourei.ErrorMessage(err), "neither Chapter nor Article")
	})
}

func TestTextConverter_Convert_RubyWithoutReading(t *testing.T) {
	t.Parallel()

	const xml = `<law_data_response><law_full_text><Law><LawBody>
		<MainProvision>
			<Article Num="1">
				<ArticleTitle>第一条</ArticleTitle>
				<Paragraph Num="1">
					<ParagraphNum/>
					<ParagraphSentence><Sentence>読み仮名の<Ruby>無</Ruby>い文。</Sentence></ParagraphSentence>
				</Paragraph>
			</Article>
		</MainProvision>
	</LawBody></Law></law_full_text></law_data_response>`

	conv := houreietree.NewTextConverter()

	got, err := conv.Convert(xml)
	require.NoError(t, err)
	assert.Contains(t, got, "読み仮名の無い文。")
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	t.Run("collects non-empty text nodes in document order", func(t *testing.T) {
		t.Parallel()

		texts, err := houreietree.ExtractText(`<root>first<child>second</child><empty>  </empty></root>`)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, texts)
	})

	t.Run("works on a full statute", func(t *testing.T) {
		t.Parallel()

		texts, err := houreietree.ExtractText(chapterLawXML)
		require.NoError(t, err)
		assert.Contains(t, texts, "行政手続法")
		assert.Contains(t, texts, "第一条")
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := houreietree.ExtractText("not xml <")
		require.Error(t, err)
		assert.Equal(t, hourei.EINVALID, hourei.ErrorCode(err))
	})
}
