package workspace

import (
	"context"
	"sync"

	"swiftdoc/internal/client"
	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/services"
)

// fakeAPI is an in-memory stand-in for the backend client. Behavior is
// driven per test: fixed project state, injectable errors, and optional
// channels to hold a generate call open while the test probes concurrency.
type fakeAPI struct {
	mu sync.Mutex

	project  domain.Project
	sections []services.SectionDetail

	getErr      error
	generateErr error
	refineErr   error
	deleteErr   error

	getCalls      int
	generateCalls int
	refineCalls   int
	deleteCalls   int

	// When set, GenerateSection signals generateStarted then blocks until
	// generateRelease is closed.
	generateStarted chan string
	generateRelease chan struct{}

	exportData     []byte
	exportFilename string
	exportErr      error

	// onGet, when set, replaces the default GetProject behavior.
	onGet func() (*services.ProjectDetail, error)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		project: domain.Project{ID: "p1", Title: "Field Notes", DocType: domain.DocTypeWord, Topic: "glacier retreat"},
	}
}

func (f *fakeAPI) setSections(sections ...services.SectionDetail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sections = sections
}

func (f *fakeAPI) setSectionContent(sectionID, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sections {
		if f.sections[i].ID == sectionID {
			f.sections[i].Content = content
		}
	}
}

func (f *fakeAPI) counts() (get, generate, refine int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls, f.generateCalls, f.refineCalls
}

func (f *fakeAPI) GetProject(ctx context.Context, session *client.Session, projectID string) (*services.ProjectDetail, error) {
	f.mu.Lock()
	f.getCalls++
	onGet := f.onGet
	if onGet != nil {
		f.mu.Unlock()
		return onGet()
	}
	if f.getErr != nil {
		err := f.getErr
		f.mu.Unlock()
		return nil, err
	}
	project := f.project
	sections := make([]services.SectionDetail, len(f.sections))
	copy(sections, f.sections)
	f.mu.Unlock()

	return &services.ProjectDetail{Project: &project, Sections: sections}, nil
}

func (f *fakeAPI) DeleteProject(ctx context.Context, session *client.Session, projectID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeAPI) GenerateSection(ctx context.Context, session *client.Session, sectionID string) error {
	f.mu.Lock()
	f.generateCalls++
	started := f.generateStarted
	release := f.generateRelease
	err := f.generateErr
	f.mu.Unlock()

	if started != nil {
		started <- sectionID
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return err
	}
	f.setSectionContent(sectionID, "generated content for "+sectionID)
	return nil
}

func (f *fakeAPI) RefineSection(ctx context.Context, session *client.Session, sectionID, instruction string) error {
	f.mu.Lock()
	f.refineCalls++
	err := f.refineErr
	f.mu.Unlock()

	if err != nil {
		return err
	}
	f.setSectionContent(sectionID, "refined: "+instruction)
	return nil
}

func (f *fakeAPI) ExportProject(ctx context.Context, session *client.Session, projectID, docType string) ([]byte, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.exportErr != nil {
		return nil, "", f.exportErr
	}
	filename := f.exportFilename
	if filename == "" {
		filename = "document." + docType
	}
	return f.exportData, filename, nil
}

func testSession() *client.Session {
	return client.NewSession("test-token")
}

func sectionDetail(id, title, content string) services.SectionDetail {
	return services.SectionDetail{
		Section: domain.Section{ID: id, ProjectID: "p1", Title: title, Content: content},
	}
}
