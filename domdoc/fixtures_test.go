package domdoc

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const nsXFL = "http://ns.adobe.com/xfl/2008/"

// requiredAttrs holds every non-defaulted DOMDocument attribute.
const requiredAttrs = `width="550" height="400" frameRate="24" currentTimeline="1" ` +
	`creatorInfo="Adobe Flash Professional CS6" platform="Macintosh" ` +
	`versionInfo="Saved by Adobe Flash Macintosh 12.0 build 481" majorVersion="12" buildNumber="481" ` +
	`viewAngle3D="23.524879" vanishingPoint3DX="275" vanishingPoint3DY="200" ` +
	`nextSceneIdentifier="2" filetypeGUID="B4A1D1DC4F2E4A4E9E1E2D8F1C7A3B5D" fileGUID="8B6E4D1C2A3F2D4BA3F4B3E8C3A2D1E0" ` +
	`playOptionsPlayLoop="false" playOptionsPlayPages="false" playOptionsPlayFrameActions="false"`

// documentXML wraps body in a DOMDocument root carrying attrs.
func documentXML(attrs, body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<DOMDocument xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns="` + nsXFL + `" ` +
		attrs + `>` + body + `</DOMDocument>`
}

// withoutAttr removes one attribute from requiredAttrs.
func withoutAttr(t *testing.T, name string) string {
	t.Helper()
	fields := strings.Fields(requiredAttrs)
	out := fields[:0]
	found := false
	for _, f := range fields {
		if strings.HasPrefix(f, name+"=") {
			found = true
			continue
		}
		out = append(out, f)
	}
	if !found {
		t.Fatalf("attribute %s not in requiredAttrs", name)
	}
	return strings.Join(out, " ")
}

// replaceAttr swaps the value of one attribute in requiredAttrs.
func replaceAttr(t *testing.T, name, value string) string {
	t.Helper()
	return withoutAttr(t, name) + ` ` + name + `="` + value + `"`
}

// singleShape wraps shape markup in one timeline, layer and frame.
func singleShape(shape string) string {
	return `<timelines><DOMTimeline name="Scene 1" layerDepthEnabled="false"><layers>
<DOMLayer name="Layer 1" color="#4FFF4F" current="true" isSelected="true"><frames>
<DOMFrame index="0" keyMode="9728"><elements>` + shape + `</elements></DOMFrame>
</frames></DOMLayer></layers></DOMTimeline></timelines>`
}

// writeZipFile writes a file into a zip archive.
func writeZipFile(t testing.TB, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// createTestFLA writes an FLA archive holding the given entries.
func createTestFLA(t testing.TB, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.fla")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		writeZipFile(t, zw, name, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return path
}

// createDocumentFLA writes an FLA archive holding only DOMDocument.xml.
func createDocumentFLA(t testing.TB, xml string) string {
	t.Helper()
	return createTestFLA(t, map[string]string{
		"DOMDocument.xml":     xml,
		"PublishSettings.xml": "<flash_profiles/>",
	})
}

// sampleBody exercises every recognized and skipped construct.
const sampleBody = `
<folders/>
<timelines>
  <DOMTimeline name="Scene 1" layerDepthEnabled="true">
    <layers>
      <DOMLayer name="Background" color="#9933CC" current="false" isSelected="false" autoNamed="false">
        <frames>
          <DOMFrame index="10" duration="5" keyMode="9728"/>
          <DOMFrame index="0" duration="10" keyMode="9728" name="intro">
            <elements>
              <DOMSymbolInstance libraryItemName="Symbol 1"/>
              <DOMShape>
                <fills>
                  <FillStyle index="3">
                    <RadialGradient focalPointRatio="0.25">
                      <GradientEntry color="#FF0000" ratio="0"/>
                      <GradientEntry color="#0000FF" alpha="0.5" ratio="1"/>
                    </RadialGradient>
                  </FillStyle>
                  <FillStyle index="1">
                    <SolidColor/>
                  </FillStyle>
                  <FillStyle index="2">
                    <LinearGradient spreadMethod="reflect">
                      <matrix>
                        <Matrix a="0.5" d="0.25" tx="100" ty="-20"/>
                      </matrix>
                      <GradientEntry color="#FFFFFF" ratio="1"/>
                      <GradientEntry color="#000000" ratio="0.2"/>
                    </LinearGradient>
                  </FillStyle>
                  <FillStyle index="4">
                    <BitmapFill bitmapPath="bitmap.png"/>
                  </FillStyle>
                </fills>
                <strokes>
                  <StrokeStyle index="2">
                    <SolidStroke scaleMode="none" weight="2.5">
                      <fill>
                        <SolidColor color="#00FF00"/>
                      </fill>
                    </SolidStroke>
                  </StrokeStyle>
                  <StrokeStyle index="1">
                    <DashedStroke/>
                  </StrokeStyle>
                  <StrokeStyle index="3">
                    <SolidStroke joints="round" miterLimit="7" caps="none"/>
                    <fill>
                      <SolidColor/>
                    </fill>
                  </StrokeStyle>
                </strokes>
                <edges>
                  <Edge fillStyle1="1" strokeStyle="2" edges="!0 0|100 0!100 0|100 100!"/>
                  <Edge cubics="!0 0(;10,10 20,20 30,30);"/>
                  <Edge fillStyle0="3" edges="!100 100[50 150 0 100!0 100|0 0"/>
                </edges>
              </DOMShape>
            </elements>
          </DOMFrame>
          <DOMFrame index="5" keyMode="9728">
            <elements>
              <DOMShape/>
              <DOMGroup/>
            </elements>
          </DOMFrame>
        </frames>
      </DOMLayer>
      <DOMLayer name="Layer 2" color="#FF4F4F" current="true" isSelected="true"/>
    </layers>
  </DOMTimeline>
  <DOMTimeline name="Scene 2" layerDepthEnabled="false"/>
</timelines>`
