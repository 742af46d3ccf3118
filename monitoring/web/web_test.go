package web_test

import (
	"io"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/monitoring/web"
)

func readPage(fs http.FileSystem) string {
	f, err := fs.Open("index.html")
	Expect(err).NotTo(HaveOccurred())

	defer f.Close()

	b, err := io.ReadAll(f)
	Expect(err).NotTo(HaveOccurred())

	return string(b)
}

var _ = Describe("Monitor page", func() {
	It("should poll the simulator state", func() {
		GinkgoT().Setenv(web.DevModeEnv, "false")

		page := readPage(web.GetAssets())

		Expect(page).To(HavePrefix("<!DOCTYPE html>"))
		Expect(page).To(ContainSubstring("<title>vmsim monitor</title>"))

		for _, route := range []string{
			"/api/processes", "/api/tlb", "/api/counters", "/api/progress",
		} {
			Expect(page).To(ContainSubstring(`"` + route + `"`))
		}
	})

	It("should serve the same page from the source tree", func() {
		GinkgoT().Setenv(web.DevModeEnv, "false")
		embedded := readPage(web.GetAssets())

		GinkgoT().Setenv(web.DevModeEnv, "true")
		fromSource := readPage(web.GetAssets())

		Expect(fromSource).To(Equal(embedded))
	})

	It("should not serve files outside the page directory", func() {
		GinkgoT().Setenv(web.DevModeEnv, "false")

		_, err := web.GetAssets().Open("web.go")

		Expect(err).To(HaveOccurred())
	})
})
