package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shelf() *Registry[Book] {
	return NewRegistry(KindBooks, []Book{
		{Title: "Първа", Categories: []string{"Психология", "Самопомощ"}},
		{Title: "Втора", Categories: []string{"Психология", "Личностно развитие"}},
		{Title: "Трета", Categories: []string{"Личностно развитие", "Самопомощ"}},
	}, BookCategories()...)
}

func titles(books []Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestFilter_SelectsCategoryInRegistryOrder(t *testing.T) {
	reg := shelf()
	assert.Equal(t, []string{"Първа", "Втора"}, titles(reg.Filter("Психология")))
	assert.Equal(t, []string{"Първа", "Трета"}, titles(reg.Filter("Самопомощ")))
}

func TestFilter_AllReturnsEverything(t *testing.T) {
	reg := shelf()
	want := []string{"Първа", "Втора", "Трета"}
	assert.Equal(t, want, titles(reg.Filter(All)))
	assert.Equal(t, want, titles(reg.Filter("")))
}

func TestFilter_EmptyCategory(t *testing.T) {
	reg := shelf()
	assert.True(t, reg.HasCategory("Семейство"))
	assert.Empty(t, reg.Filter("Семейство"))
	// Reset restores the full list.
	assert.Len(t, reg.Filter(All), 3)
}

func TestFilter_IsSubsetAndStable(t *testing.T) {
	reg := shelf()
	for _, c := range reg.Categories() {
		got := reg.Filter(c)
		assert.Equal(t, got, reg.Filter(c), "filter must be deterministic for %s", c)
		last := -1
		for _, b := range got {
			idx := -1
			for i, all := range reg.All() {
				if all.Title == b.Title {
					idx = i
				}
			}
			require.NotEqual(t, -1, idx)
			assert.Greater(t, idx, last, "order must follow the registry")
			last = idx
			if !IsAll(c) {
				assert.Contains(t, b.Categories, c)
			}
		}
	}
}

func TestRegistry_IsolatedFromCaller(t *testing.T) {
	books := []Book{{Title: "Първа", Categories: []string{"Психология"}}}
	reg := NewRegistry(KindBooks, books)
	books[0].Title = "changed"

	all := reg.All()
	assert.Equal(t, "Първа", all[0].Title)
	all[0].Title = "changed again"
	assert.Equal(t, "Първа", reg.All()[0].Title)
}

func TestCategories_DerivedInFirstAppearanceOrder(t *testing.T) {
	reg := NewRegistry(KindBlog, []BlogPost{
		{Title: "a", Tags: []string{"Стрес", "Релаксация"}},
		{Title: "b", Tags: []string{"Релаксация", "Комуникация", All, ""}},
	})
	assert.Equal(t, []string{All, "Стрес", "Релаксация", "Комуникация"}, reg.Categories())
}

func TestCategories_Declared(t *testing.T) {
	reg := shelf()
	assert.Equal(t, append([]string{All}, BookCategories()...), reg.Categories())
}

func TestEveryRecordReachable(t *testing.T) {
	reg := shelf()
	assert.Empty(t, reg.Uncovered())

	orphan := NewRegistry(KindBooks, []Book{
		{Title: "Първа", Categories: []string{"Психология"}},
		{Title: "Сирак", Categories: []string{"Непозната"}},
	}, "Психология")
	assert.Equal(t, []string{"Сирак"}, orphan.Uncovered())
}

func TestLookupAndBySlug(t *testing.T) {
	reg := NewRegistry(KindBooks, []Book{{Title: "Пътят към себе си", Categories: []string{"Психология"}}})

	b, ok := reg.Lookup("Пътят към себе си")
	require.True(t, ok)
	assert.Equal(t, "Пътят към себе си", b.Title)

	b, ok = reg.BySlug("patyat-kam-sebe-si")
	require.True(t, ok)
	assert.Equal(t, "Пътят към себе си", b.Title)

	_, ok = reg.BySlug("missing")
	assert.False(t, ok)
}

func TestValidate_ReportsProblemsWithoutFailing(t *testing.T) {
	reg := NewRegistry(KindServices, []Service{
		{Title: "Добра", Categories: []string{"Онлайн"}, Description: "d"},
		{Title: "", Categories: []string{"Онлайн"}, Description: "d"},
		{Title: "Добра", Categories: []string{"Онлайн"}, Description: "d"},
		{Title: "Без категории", Description: "d"},
		{Title: "Запазена", Categories: []string{All}, Description: "d"},
		{Title: "Чужда", Categories: []string{"Непозната"}, Description: "d"},
		{Title: "!!!", Categories: []string{"Онлайн"}, Description: "d"},
		{Title: "Без описание", Categories: []string{"Онлайн"}, Description: "  "},
	}, ServiceCategories()...)

	warnings := reg.Validate()
	problems := map[int][]string{}
	for _, w := range warnings {
		assert.Equal(t, KindServices, w.Kind)
		problems[w.Index] = append(problems[w.Index], w.Problem)
	}

	assert.NotContains(t, problems, 0)
	assert.Equal(t, []string{"empty title"}, problems[1])
	assert.Contains(t, problems[2], "duplicate title, first used at index 0")
	assert.Contains(t, problems[3], "no categories")
	assert.Contains(t, problems[4], "category "+All+" is reserved")
	assert.Contains(t, problems[5], "category Непозната is not declared")
	assert.Contains(t, problems[5], "not reachable from any category")
	assert.Contains(t, problems[6], "title produces an empty slug")
	assert.Equal(t, []string{"empty description"}, problems[7])

	// The registry still serves every record.
	assert.Len(t, reg.All(), 8)
}

func TestWarningString(t *testing.T) {
	w := Warning{Kind: KindBooks, Index: 2, Key: "Книга", Problem: "no categories"}
	assert.Equal(t, `books[2] "Книга": no categories`, w.String())

	w.Key = ""
	assert.Equal(t, "books[2]: no categories", w.String())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("videos")
	assert.Error(t, err)
}
