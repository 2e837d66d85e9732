package llm

import (
	"fmt"
	"strings"

	"newsdesk/internal/domain"
)

const systemPrompt = `あなたはUK/Afro-diasporaを中心とした海外音楽シーンを日本の読者に紹介する音楽メディアの編集者です。
アーティスト名、曲名、レーベル名、ジャンル名は英語表記のまま残してください。
絵文字と過度な感嘆符は使わず、音楽好きの友人に話すような自然な日本語で書いてください。`

const translateTitlePrompt = `次の英語の見出しを日本語に翻訳してください。翻訳した見出しのみを出力してください。

見出し:
%s`

const articlePrompt = `以下の情報をもとに、日本の読者向けの紹介記事を書いてください。

## 構成
1. 導入: 何が起きたのかを簡潔に
2. 背景: アーティストやシーンにおける位置づけ（分かる範囲で）
3. 聴きどころ・読みどころ

## 制約
- 300〜500文字程度
- 情報がない部分は推測で書かない
- アーティスト情報がある場合はそれを優先して使う
- 本文のみを出力する

## 入力
%s`

const casualPostPrompt = `以下の記事を紹介するX（旧Twitter）の投稿文を日本語で書いてください。

## 制約
- %d文字以内
- 何が起きたかを1〜2文で、事実ベースで短く
- 関連するハッシュタグを2〜3個（例: #Afrobeats #UKRap #Amapiano）
- URLは含めない（後から付け足します）
- 投稿文のみを出力する

## 入力
%s`

const trackPostPrompt = `以下の楽曲をおすすめするX（旧Twitter）の投稿文を日本語で書いてください。

## 制約
- %d文字以内
- 曲の聴きどころを一言で
- アーティスト名と曲名を含める
- ハッシュタグは2個まで
- URLは含めない（後から付け足します）
- 投稿文のみを出力する

## 入力
%s`

const contentTypePrompt = `次の記事に最も当てはまるカテゴリを1つだけ選んでください。

## カテゴリ
- mv: ミュージックビデオや新曲の映像公開
- news: 契約、受賞、イベント告知などの業界ニュース
- interview: インタビュー、アーティストの発言が中心の記事
- live: ライブ、フェス、ツアー、パフォーマンス映像
- feature: シーン解説、カルチャー、アーティスト紹介などの特集
- tune: 楽曲単体のおすすめ、プレイリスト

## 入力
タイトル: %s
説明: %s

## 出力
カテゴリ名のみ（mv, news, interview, live, feature, tune のいずれか）`

const summarizePrompt = `以下は海外の音楽記事の本文です。日本の読者向けに、日本語の見出しと要約を作ってください。

## 制約
- 見出しは40文字以内
- 要約は200〜400文字、記事に書かれている事実のみ
- 次のJSON形式だけを出力する: {"title_ja": "...", "summary_ja": "..."}

## 記事
タイトル: %s
サイト: %s
本文:
%s`

// maxPostRunes leaves room for the link within X's weighted length limit.
const maxPostRunes = 120

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "なし"
	}
	return s
}

// briefInput renders the writer inputs as labelled lines.
func briefInput(b domain.Brief) string {
	var sb strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&sb, "%s: %s\n", label, orNone(value))
	}

	line("タイトル", b.Title)
	if b.TitleJa != "" {
		line("日本語タイトル", b.TitleJa)
	}
	line("概要", b.Summary)
	if b.ContentType != "" {
		line("カテゴリ", string(b.ContentType))
	}
	if b.EditorNote != "" {
		line("編集メモ", b.EditorNote)
	}
	if t := b.Track; t != nil {
		line("アーティスト", t.Artist)
		line("曲名", t.Title)
		if t.Album != "" {
			line("アルバム", t.Album)
		}
		if t.ReleaseDate != "" {
			line("リリース日", t.ReleaseDate)
		}
		if len(t.Genres) > 0 {
			line("ジャンル", strings.Join(t.Genres, ", "))
		}
		if t.Description != "" {
			line("説明文", truncateRunes(t.Description, 600))
		}
	}
	line("アーティスト情報", artistInfo(b.Artist))
	if len(b.Related) > 0 {
		line("関連記事", strings.Join(b.Related, " / "))
	}
	return sb.String()
}

func artistInfo(a *domain.Artist) string {
	if a == nil {
		return ""
	}
	parts := []string{"名前: " + a.Name}
	if a.Origin != nil {
		parts = append(parts, "出身: "+*a.Origin)
	}
	if a.Genre != nil {
		parts = append(parts, "ジャンル: "+*a.Genre)
	}
	if a.Description != nil {
		parts = append(parts, "概要: "+truncateRunes(*a.Description, 300))
	}
	return strings.Join(parts, "、")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
