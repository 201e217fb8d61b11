package countries

import "testing"

func TestDirectoryContainsSeedCountries(t *testing.T) {
	dir := NewDirectory(DirectoryOptions{})
	for _, name := range []string{"Mexico", "Brazil", "South Korea", "Russia", "France"} {
		if !dir.Contains(name) {
			t.Fatalf("expected %q in directory", name)
		}
	}
	if dir.Contains("Atlantis") {
		t.Fatalf("unexpected country")
	}
}

func TestOptionsMirrorNames(t *testing.T) {
	dir := NewDirectory(DirectoryOptions{})
	opts := dir.Options()
	if len(opts) != len(All()) {
		t.Fatalf("expected %d options, got %d", len(All()), len(opts))
	}
	for _, o := range opts {
		if o.Label != o.Value || o.Label == "" {
			t.Fatalf("bad option %+v", o)
		}
	}
}

func TestFilterEmptyListsIsIdentity(t *testing.T) {
	all := All()
	got := Filter(all, nil, nil, nil)
	if len(got) != len(all) {
		t.Fatalf("expected %d, got %d", len(all), len(got))
	}
	for i := range all {
		if got[i] != all[i] {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestFilterWhitelistBlacklistPriority(t *testing.T) {
	got := Filter(All(), []string{"fr", "MX", "fr"}, []string{"MX", "BR", "FR", "US"}, []string{"us"})
	want := []string{"France", "Mexico", "Brazil"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	list := All()
	list[0].Name = "changed"
	if All()[0].Name == "changed" {
		t.Fatalf("All exposed internal slice")
	}
}
