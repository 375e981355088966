package etree_test

// Trimmed-down law_data responses in the shape the e-Gov API v2 returns.
// chapterLawXML is a statute proper (chapters, sections, items, a ruby
// annotation and a table); articleLawXML is an enforcement regulation
// (articles at the top level, Column-structured item sentences).

const chapterLawXML = `<?xml version="1.0" encoding="UTF-8"?>
<law_data_response>
  <law_info>
    <law_id>405AC0000000088</law_id>
    <law_num>平成五年法律第八十八号</law_num>
  </law_info>
  <revision_info>
    <law_title>行政手続法</law_title>
  </revision_info>
  <law_full_text>
    <Law Era="Heisei" Lang="ja">
      <LawNum>平成五年法律第八十八号</LawNum>
      <LawBody>
        <LawTitle>行政手続法</LawTitle>
        <TOC>
          <TOCLabel>目次</TOCLabel>
          <TOCChapter Num="1">
            <ChapterTitle>第一章　総則</ChapterTitle>
            <ArticleRange>（第一条・第二条）</ArticleRange>
          </TOCChapter>
          <TOCChapter Num="2">
            <ChapterTitle>第二章　申請に対する処分</ChapterTitle>
            <ArticleRange>（第五条）</ArticleRange>
          </TOCChapter>
          <TOCSupplProvision>
            <SupplProvisionLabel>附則</SupplProvisionLabel>
          </TOCSupplProvision>
        </TOC>
        <MainProvision>
          <Chapter Num="1">
            <ChapterTitle>第一章　総則</ChapterTitle>
            <Article Num="1">
              <ArticleCaption>（目的等）</ArticleCaption>
              <ArticleTitle>第一条</ArticleTitle>
              <Paragraph Num="1">
                <ParagraphNum/>
                <ParagraphSentence>
                  <Sentence>この法律は、処分に関する手続に関し、共通する事項を定める。</Sentence>
                </ParagraphSentence>
              </Paragraph>
              <Paragraph Num="2">
                <ParagraphNum>２</ParagraphNum>
                <ParagraphSentence>
                  <Sentence>処分については、他の法律に特別の定めがある場合を除く。</Sentence>
                </ParagraphSentence>
              </Paragraph>
            </Article>
            <Article Num="2">
              <ArticleCaption>（定義）</ArticleCaption>
              <ArticleTitle>第二条</ArticleTitle>
              <Paragraph Num="1">
                <ParagraphNum/>
                <ParagraphSentence>
                  <Sentence>この法律において、次の各号に掲げる用語の意義は、当該各号に定めるところによる。</Sentence>
                </ParagraphSentence>
                <Item Num="1">
                  <ItemTitle>一</ItemTitle>
                  <ItemSentence>
                    <Sentence>法令　法律、法律に基づく命令をいう。</Sentence>
                  </ItemSentence>
                  <Subitem1 Num="1">
                    <Subitem1Title>イ</Subitem1Title>
                    <Subitem1Sentence>
                      <Sentence>処分に関するもの</Sentence>
                    </Subitem1Sentence>
                    <Subitem2 Num="1">
                      <Subitem2Title>（１）</Subitem2Title>
                      <Subitem2Sentence>
                        <Sentence>不利益処分に関するもの</Sentence>
                      </Subitem2Sentence>
                    </Subitem2>
                  </Subitem1>
                </Item>
                <Item Num="2">
                  <ItemTitle>二</ItemTitle>
                  <ItemSentence>
                    <Sentence>処分　行政庁の<Ruby>勧告<Rt>かんこく</Rt></Ruby>以外の処分をいう。</Sentence>
                  </ItemSentence>
                </Item>
              </Paragraph>
            </Article>
          </Chapter>
          <Chapter Num="2">
            <ChapterTitle>第二章　申請に対する処分</ChapterTitle>
            <Section Num="1">
              <SectionTitle>第一節　通則</SectionTitle>
              <Article Num="5">
                <ArticleCaption>（審査基準）</ArticleCaption>
                <ArticleTitle>第五条</ArticleTitle>
                <Paragraph Num="1">
                  <ParagraphNum/>
                  <ParagraphSentence>
                    <Sentence>行政庁は、審査基準を定めるものとする。</Sentence>
                  </ParagraphSentence>
                  <TableStruct>
                    <Table>
                      <TableRow>
                        <TableColumn><Sentence>区分</Sentence></TableColumn>
                        <TableColumn><Sentence>標準処理期間</Sentence></TableColumn>
                      </TableRow>
                      <TableRow>
                        <TableColumn><Sentence>申請</Sentence></TableColumn>
                        <TableColumn><Sentence>三十日</Sentence></TableColumn>
                      </TableRow>
                    </Table>
                  </TableStruct>
                </Paragraph>
              </Article>
            </Section>
          </Chapter>
        </MainProvision>
        <SupplProvision>
          <SupplProvisionLabel>附則</SupplProvisionLabel>
          <Paragraph Num="1">
            <ParagraphCaption>（施行期日）</ParagraphCaption>
            <ParagraphNum>１</ParagraphNum>
            <ParagraphSentence>
              <Sentence>この法律は、公布の日から施行する。</Sentence>
            </ParagraphSentence>
          </Paragraph>
        </SupplProvision>
      </LawBody>
    </Law>
  </law_full_text>
</law_data_response>`

const articleLawXML = `<?xml version="1.0" encoding="UTF-8"?>
<law_data_response>
  <law_info>
    <law_id>406CO0000000265</law_id>
    <law_num>平成六年政令第二百六十五号</law_num>
  </law_info>
  <revision_info>
    <law_title>行政手続法施行令</law_title>
  </revision_info>
  <law_full_text>
    <Law Era="Heisei" Lang="ja">
      <LawNum>平成六年政令第二百六十五号</LawNum>
      <LawBody>
        <LawTitle>行政手続法施行令</LawTitle>
        <MainProvision>
          <Article Num="1">
            <ArticleCaption>（定義）</ArticleCaption>
            <ArticleTitle>第一条</ArticleTitle>
            <Paragraph Num="1">
              <ParagraphNum/>
              <ParagraphSentence>
                <Sentence>この政令において使用する用語は、法において使用する用語の例による。</Sentence>
              </ParagraphSentence>
              <Item Num="1">
                <ItemTitle>一</ItemTitle>
                <ItemSentence>
                  <Column Num="1"><Sentence>様式</Sentence></Column>
                  <Column Num="2"><Sentence>別記様式第一号による。</Sentence></Column>
                </ItemSentence>
              </Item>
            </Paragraph>
          </Article>
        </MainProvision>
        <SupplProvision>
          <Paragraph Num="1">
            <ParagraphNum>１</ParagraphNum>
            <ParagraphSentence>
              <Sentence>この政令は、平成六年十月一日から施行する。</Sentence>
            </ParagraphSentence>
          </Paragraph>
        </SupplProvision>
      </LawBody>
    </Law>
  </law_full_text>
</law_data_response>`
