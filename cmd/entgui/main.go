/*
* Qt front-end module
* Copyright (C) 2025  Håkan Blomqvist
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// entgui is a Qt front-end for the randomness analysis library.
package main

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/mappu/miqt/qt"

	"github.com/chbtoys/ent"
)

func main() {
	qt.NewQApplication(os.Args)
	window := qt.NewQMainWindow(nil)
	window.SetWindowTitle("ent — randomness analysis")
	window.SetMinimumSize2(800, 20)

	menuBar := window.MenuBar()
	fileMenu := qt.NewQMenu3("File")
	fileMenu.AddAction2(qt.QIcon_FromTheme("help-about"), "About")
	fileMenu.AddSeparator()
	fileMenu.AddAction2(qt.QIcon_FromTheme("application-exit"), "Quit")
	menuBar.AddMenu(fileMenu)

	widget := qt.NewQWidget(nil)
	mainLayout := qt.NewQVBoxLayout(widget)
	filePickerLayout := qt.NewQGridLayout(widget)
	resultsLayout := qt.NewQGridLayout(widget)

	fileNameTextField := qt.NewQLineEdit(widget)
	fileNameTextField.SetPlaceholderText("Enter the path of the file to analyze")
	filePickerButton := qt.NewQPushButton4(qt.QIcon_FromTheme("document-open"), "Choose file")

	filePickerButton.OnClicked(func() {
		fileDialog := qt.NewQFileDialog4(widget, "Choose a file to analyze")
		fileDialog.SetFileMode(qt.QFileDialog__ExistingFile)
		fileDialog.SetNameFilter("All files (*)")

		if fileDialog.Exec() == int(qt.QDialog__Accepted) {
			selectedFile := fileDialog.SelectedFiles()
			if len(selectedFile) > 0 {
				fileNameTextField.SetText(selectedFile[0])
			}
		}
	})

	analyzeBytesButton := qt.NewQPushButton4(qt.QIcon_FromTheme("media-playback-start"), "Analyze bytes")
	analyzeBitsButton := qt.NewQPushButton4(qt.QIcon_FromTheme("media-playback-start"), "Analyze bits")

	filePickerLayout.AddWidget3(fileNameTextField.QWidget, 0, 0, 1, 2)
	filePickerLayout.AddWidget2(filePickerButton.QWidget, 0, 2)
	filePickerLayout.AddWidget2(analyzeBytesButton.QWidget, 1, 1)
	filePickerLayout.AddWidget2(analyzeBitsButton.QWidget, 1, 2)

	entropyDisplay := qt.NewQLineEdit(widget)
	entropyDisplay.SetReadOnly(true)

	compressionDisplay := qt.NewQLineEdit(widget)
	compressionDisplay.SetReadOnly(true)

	chiSquareDisplay := qt.NewQLineEdit(widget)
	chiSquareDisplay.SetReadOnly(true)

	pValueDisplay := qt.NewQLineEdit(widget)
	pValueDisplay.SetReadOnly(true)

	meanDisplay := qt.NewQLineEdit(widget)
	meanDisplay.SetReadOnly(true)

	piDisplay := qt.NewQLineEdit(widget)
	piDisplay.SetReadOnly(true)

	serialCorrDisplay := qt.NewQLineEdit(widget)
	serialCorrDisplay.SetReadOnly(true)

	signatureDisplay := qt.NewQLineEdit(widget)
	signatureDisplay.SetReadOnly(true)

	resultsLayout.AddWidget2(qt.NewQLabel3("Entropy (bits per sample)").QWidget, 1, 0)
	resultsLayout.AddWidget2(entropyDisplay.QWidget, 1, 1)

	resultsLayout.AddWidget2(qt.NewQLabel3("Optimum compression (percent)").QWidget, 2, 0)
	resultsLayout.AddWidget2(compressionDisplay.QWidget, 2, 1)

	resultsLayout.AddWidget2(qt.NewQLabel3("Chi square statistic").QWidget, 3, 0)
	resultsLayout.AddWidget2(chiSquareDisplay.QWidget, 3, 1)

	resultsLayout.AddWidget2(qt.NewQLabel3("Chi square tail probability").QWidget, 4, 0)
	resultsLayout.AddWidget2(pValueDisplay.QWidget, 4, 1)

	resultsLayout.AddWidget2(qt.NewQLabel3("Arithmetic mean of data bytes").QWidget, 5, 0)
	resultsLayout.AddWidget2(meanDisplay.QWidget, 5, 1)

	resultsLayout.AddWidget2(qt.NewQLabel3("Monte Carlo value for Pi").QWidget, 6, 0)
	resultsLayout.AddWidget2(piDisplay.QWidget, 6, 1)

	resultsLayout.AddWidget2(qt.NewQLabel3("Serial correlation coefficient").QWidget, 7, 0)
	resultsLayout.AddWidget2(serialCorrDisplay.QWidget, 7, 1)

	resultsLayout.AddWidget2(qt.NewQLabel3("Container signatures").QWidget, 8, 0)
	resultsLayout.AddWidget2(signatureDisplay.QWidget, 8, 1)

	mainLayout.AddLayout(filePickerLayout.QLayout)
	mainLayout.AddLayout(resultsLayout.QLayout)

	logWindow := qt.NewQTextEdit4("Analysis log", widget)
	logWindow.SetReadOnly(true)
	logWindow.SetFont(qt.NewQFont2("monospace"))
	mainLayout.AddWidget(logWindow.QWidget)

	analyze := func(mode ent.SampleMode) {
		logWindow.Clear()
		fileName := fileNameTextField.Text()
		if fileName == "" {
			errorWindow := qt.NewQErrorMessage(widget)
			errorWindow.ShowMessage("The input file path is empty.")
			return
		}

		fileStat, statErr := os.Stat(fileName)
		if errors.Is(statErr, os.ErrNotExist) {
			errorWindow := qt.NewQErrorMessage(widget)
			errorWindow.ShowMessage("The requested file was not found. Check the path and try again.")
			return
		}
		if statErr == nil && fileStat.IsDir() {
			errorWindow := qt.NewQErrorMessage(widget)
			errorWindow.ShowMessage("The path points to a directory, not a file. Check the path and try again.")
			return
		}

		data, loadErr := ent.LoadFile(fileName)
		if loadErr != nil {
			errorWindow := qt.NewQErrorMessage(widget)
			errorWindow.ShowMessage("Reading the file failed: " + loadErr.Error())
			return
		}

		result, calcErr := ent.Calculate(data, mode)
		if calcErr != nil {
			errorWindow := qt.NewQErrorMessage(widget)
			errorWindow.ShowMessage("Analysis failed: " + calcErr.Error())
			return
		}

		entropyDisplay.SetText(strconv.FormatFloat(result.Entropy, 'f', -1, 64))
		compressionDisplay.SetText(strconv.FormatFloat(result.Compression, 'f', -1, 64))
		chiSquareDisplay.SetText(strconv.FormatFloat(result.ChiSquare, 'f', -1, 64))
		pValueDisplay.SetText(strconv.FormatFloat(result.ExactPValue, 'f', -1, 64))
		meanDisplay.SetText(strconv.FormatFloat(result.Mean, 'f', -1, 64))
		piDisplay.SetText(strconv.FormatFloat(result.Pi, 'f', -1, 64))
		if result.SerialCorrelation.Valid {
			serialCorrDisplay.SetText(strconv.FormatFloat(result.SerialCorrelation.Float64, 'f', -1, 64))
		} else {
			serialCorrDisplay.SetText("undefined (all values equal)")
		}

		found, sigErr := ent.DetectContainers(data)
		if sigErr != nil {
			signatureDisplay.SetText("scan failed: " + sigErr.Error())
		} else if len(found) > 0 {
			signatureDisplay.SetText(strings.Join(found, ", "))
		} else {
			signatureDisplay.SetText("none detected")
		}

		var report strings.Builder
		ent.WriteReport(&report, result)
		logWindow.Append(report.String())
	}

	analyzeBytesButton.OnClicked(func() { analyze(ent.ByteMode) })
	analyzeBitsButton.OnClicked(func() { analyze(ent.BitMode) })

	window.SetCentralWidget(widget)
	window.Show()
	qt.QApplication_Exec()
}
